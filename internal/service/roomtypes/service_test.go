package roomtypes

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) result(args mock.Arguments) (*domain.RoomType, error) {
	if rt := args.Get(0); rt != nil {
		return rt.(*domain.RoomType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *repoMock) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	return m.result(m.Called(ctx, rt))
}

func (m *repoMock) UpdatePrice(ctx context.Context, id int64, price float64) (*domain.RoomType, error) {
	return m.result(m.Called(ctx, id, price))
}

func (m *repoMock) UpdateStatus(ctx context.Context, id int64, isActive bool) (*domain.RoomType, error) {
	return m.result(m.Called(ctx, id, isActive))
}

func (m *repoMock) UpdateStock(ctx context.Context, id int64, total int) (*domain.RoomType, error) {
	return m.result(m.Called(ctx, id, total))
}

type guardRecorder struct {
	keys []int64
	err  error
}

func (g *guardRecorder) WithRoomTypeGuard(ctx context.Context, roomTypeID int64, fn func(ctx context.Context) error) error {
	g.keys = append(g.keys, roomTypeID)
	if err := fn(ctx); err != nil {
		return err
	}
	return g.err
}

func TestCreate(t *testing.T) {
	repo := &repoMock{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(rt *domain.RoomType) bool {
		return rt.HotelID == 1 && rt.Name == "Deluxe" && rt.IsActive
	})).Return(&domain.RoomType{ID: 5, HotelID: 1, Name: "Deluxe", Price: 3200, Total: 4, IsActive: true}, nil)
	svc := NewService(repo, &guardRecorder{}, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.CreateRoomTypeRequest{HotelID: 1, Name: " Deluxe ", Price: 3200, Total: 4})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.True(t, resp.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&repoMock{}, &guardRecorder{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRoomTypeRequest{HotelID: 0, Name: "A", Price: 1, Total: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateRoomTypeRequest{HotelID: 1, Name: "", Price: 1, Total: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateRoomTypeRequest{HotelID: 1, Name: "A", Price: math.NaN(), Total: 1})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, &models.CreateRoomTypeRequest{HotelID: 1, Name: "A", Price: 1, Total: -1})
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestCreate_HotelNotFound(t *testing.T) {
	repo := &repoMock{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, roomTypeRepo.ErrHotelNotFound)
	svc := NewService(repo, &guardRecorder{}, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateRoomTypeRequest{HotelID: 9, Name: "A", Price: 1, Total: 1, IsActive: ptr.Ptr(false)})

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestUpdatePrice(t *testing.T) {
	repo := &repoMock{}
	repo.On("UpdatePrice", mock.Anything, int64(5), 2500.0).Return(&domain.RoomType{ID: 5, Price: 2500}, nil)
	repo.On("UpdatePrice", mock.Anything, int64(6), 2500.0).Return(nil, roomTypeRepo.ErrRoomTypeNotFound)
	svc := NewService(repo, &guardRecorder{}, logger.NewNop())

	resp, err := svc.UpdatePrice(context.Background(), 5, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, resp.Price)

	_, err = svc.UpdatePrice(context.Background(), 6, 2500)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)

	_, err = svc.UpdatePrice(context.Background(), 5, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.UpdatePrice(context.Background(), 5, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateStockAndStatus_RunUnderAdmissionGuard(t *testing.T) {
	repo := &repoMock{}
	repo.On("UpdateStock", mock.Anything, int64(5), 0).Return(&domain.RoomType{ID: 5, Total: 0}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), false).Return(&domain.RoomType{ID: 5}, nil)
	guard := &guardRecorder{}
	svc := NewService(repo, guard, logger.NewNop())

	resp, err := svc.UpdateStock(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = svc.UpdateStatus(context.Background(), 5, false)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 5}, guard.keys)

	_, err = svc.UpdateStock(context.Background(), 5, -3)
	assert.ErrorIs(t, err, ErrInvalidStock)
	assert.Len(t, guard.keys, 2)
}

func TestUpdateStock_SerializationConflict(t *testing.T) {
	repo := &repoMock{}
	repo.On("UpdateStock", mock.Anything, int64(5), 2).Return(&domain.RoomType{ID: 5, Total: 2}, nil)
	// конфликт приходит на COMMIT, после успешного UPDATE
	guard := &guardRecorder{err: fmt.Errorf("%w: commit", pgerrors.ErrSerializationFailure)}
	svc := NewService(repo, guard, logger.NewNop())

	_, err := svc.UpdateStock(context.Background(), 5, 2)

	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.NotErrorIs(t, err, ErrInternal)
}
