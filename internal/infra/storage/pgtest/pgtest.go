//go:build integration

// Package pgtest поднимает PostgreSQL в testcontainers для integration тестов хранилища
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/SMC-HotelBookingService/migrations"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/migrator"
)

const (
	// DriverPgx драйвер jackc/pgx через database/sql
	DriverPgx = "pgx"
	// DriverPq драйвер lib/pq
	DriverPq = "postgres"
)

// StartEmpty запускает контейнер и возвращает подключение без миграций
func StartEmpty(t *testing.T, driver string) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "booking",
				"POSTGRES_PASSWORD": "booking",
				"POSTGRES_DB":       "booking",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=booking password=booking dbname=booking sslmode=disable TimeZone=UTC",
		host, port.Port())
	db, err := sql.Open(driver, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	db.SetMaxOpenConns(30)
	require.NoError(t, db.PingContext(ctx))

	return db
}

// Start запускает контейнер и применяет миграции схемы
func Start(t *testing.T, driver string) *sql.DB {
	t.Helper()

	db := StartEmpty(t, driver)

	m, err := migrator.New(db, migrations.FS, logger.NewNop())
	require.NoError(t, err)
	_, err = m.Up(context.Background())
	require.NoError(t, err)

	return db
}

// SeedUser создает пользователя с уникальным email
func SeedUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.QueryRowContext(context.Background(),
		`INSERT INTO users (email, password, role) VALUES ($1, 'x', 'USER') RETURNING id`,
		fmt.Sprintf("user-%d@example.com", time.Now().UnixNano())).Scan(&id))
	return id
}

// SeedHotel создает отель
func SeedHotel(t *testing.T, db *sql.DB, name, city string) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.QueryRowContext(context.Background(),
		`INSERT INTO hotels (name, city, address) VALUES ($1, $2, 'Kurortny 1') RETURNING id`,
		name, city).Scan(&id))
	return id
}

// SeedImage добавляет изображение отеля
func SeedImage(t *testing.T, db *sql.DB, hotelID int64, url string, sortOrder int) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO hotel_images (hotel_id, url, sort_order) VALUES ($1, $2, $3)`,
		hotelID, url, sortOrder)
	require.NoError(t, err)
}

// SeedRoomType создает тип номера
func SeedRoomType(t *testing.T, db *sql.DB, hotelID int64, name string, price float64, total int, isActive bool) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.QueryRowContext(context.Background(),
		`INSERT INTO room_types (hotel_id, name, price, total, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		hotelID, name, price, total, isActive).Scan(&id))
	return id
}
