package list_room_types

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// UseCase админский список типов номеров с предварительным расчетом остатка
type UseCase struct {
	roomTypeRepo RoomTypeRepository
	engine       CapacityEngine
	concurrency  int
	logger       Logger
}

// NewUseCase создает use case. concurrency ограничивает число параллельных подсчетов
func NewUseCase(roomTypeRepo RoomTypeRepository, engine CapacityEngine, concurrency int, logger Logger) *UseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &UseCase{
		roomTypeRepo: roomTypeRepo,
		engine:       engine,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Execute возвращает типы номеров. Если заданы обе даты, для каждого считается
// remaining = total - пересечения и soldOut = remaining <= 0.
// Результат предварительный: между просмотром и бронированием остаток может измениться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация дат (до любых запросов в БД)
	dates, err := parseDates(req)
	if err != nil {
		uc.logger.Warn("ListRoomTypes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем типы номеров
	roomTypes, err := uc.roomTypeRepo.List(ctx, domain.RoomTypesFilter{
		HotelID:      req.HotelID,
		IsActive:     req.IsActive,
		IncludeHotel: true,
	})
	if err != nil {
		uc.logger.Error("ListRoomTypes: failed to list room types: %v", err)
		return nil, fmt.Errorf("%w: failed to list room types: %v", ErrInternal, err)
	}

	items := make([]RoomTypeAvailability, len(roomTypes))
	for i, rt := range roomTypes {
		items[i] = RoomTypeAvailability{RoomType: rt}
	}

	if dates == nil {
		return &Response{RoomTypes: items}, nil
	}

	// 3. Считаем остаток параллельно, не больше concurrency запросов одновременно
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i := range items {
		item := &items[i]
		g.Go(func() error {
			capacity, err := uc.engine.RemainingCapacity(gctx, item.RoomType, *dates)
			if err != nil {
				return fmt.Errorf("room type id=%d: %w", item.RoomType.ID, err)
			}
			item.Remaining = ptr.Ptr(capacity.Remaining)
			item.SoldOut = ptr.Ptr(capacity.SoldOut())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("ListRoomTypes: failed to calculate remaining capacity: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ListRoomTypes: %d room types, dates=%s", len(items), dates)

	return &Response{Dates: dates, RoomTypes: items}, nil
}

// parseDates возвращает nil, если хотя бы одна из дат не задана
func parseDates(req *Request) (*domain.DateRange, error) {
	if req.CheckIn == nil || req.CheckOut == nil ||
		strings.TrimSpace(*req.CheckIn) == "" || strings.TrimSpace(*req.CheckOut) == "" {
		return nil, nil
	}

	dates, err := domain.ParseDateRange(*req.CheckIn, *req.CheckOut)
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return &dates, nil
}
