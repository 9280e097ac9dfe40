package roomtypes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// Service административное управление типами номеров
type Service struct {
	roomTypeRepo RoomTypeRepository
	guard        RoomTypeGuard
	logger       Logger
}

// NewService создает новый экземпляр сервиса типов номеров
func NewService(roomTypeRepo RoomTypeRepository, guard RoomTypeGuard, logger Logger) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		guard:        guard,
		logger:       logger,
	}
}

// Create создает тип номера, по умолчанию активный
func (s *Service) Create(ctx context.Context, req *models.CreateRoomTypeRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("Create: creating room type %q for hotel=%d", req.Name, req.HotelID)

	// 1. Валидация
	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotelId must be positive", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxRoomTypeNameLength {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := validateStock(req.Total); err != nil {
		return nil, err
	}

	// 2. Создаем
	created, err := s.roomTypeRepo.Create(ctx, &domain.RoomType{
		HotelID:  req.HotelID,
		Name:     name,
		Price:    req.Price,
		Total:    req.Total,
		IsActive: ptr.Deref(req.IsActive, true),
	})
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrHotelNotFound) {
			s.logger.Warn("Create: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created room type id=%d", created.ID)
	return models.FromDomainRoomType(created), nil
}

// UpdatePrice меняет цену; на остаток не влияет
func (s *Service) UpdatePrice(ctx context.Context, id int64, price float64) (*models.RoomTypeResponse, error) {
	s.logger.Info("UpdatePrice: room type id=%d, price=%.2f", id, price)

	if err := validatePrice(price); err != nil {
		return nil, err
	}

	rt, err := s.roomTypeRepo.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, s.mapUpdateError("UpdatePrice", id, err)
	}
	return models.FromDomainRoomType(rt), nil
}

// UpdateStatus включает или выключает тип номера.
// Выключенный тип не принимает новые бронирования, существующие остаются
func (s *Service) UpdateStatus(ctx context.Context, id int64, isActive bool) (*models.RoomTypeResponse, error) {
	s.logger.Info("UpdateStatus: room type id=%d, isActive=%t", id, isActive)

	var result *domain.RoomType
	err := s.guard.WithRoomTypeGuard(ctx, id, func(txCtx context.Context) error {
		rt, err := s.roomTypeRepo.UpdateStatus(txCtx, id, isActive)
		if err != nil {
			return err
		}
		result = rt
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("UpdateStatus", id, err)
	}
	return models.FromDomainRoomType(result), nil
}

// UpdateStock меняет количество номеров под тем же guard, что и допуск бронирований:
// advisory_lock сериализует изменение с допуском, serializable отклоняет одну из
// конфликтующих транзакций, none не защищает.
// Уменьшение ниже числа действующих бронирований разрешено: они не отменяются
func (s *Service) UpdateStock(ctx context.Context, id int64, total int) (*models.RoomTypeResponse, error) {
	s.logger.Info("UpdateStock: room type id=%d, total=%d", id, total)

	if err := validateStock(total); err != nil {
		return nil, err
	}

	var result *domain.RoomType
	err := s.guard.WithRoomTypeGuard(ctx, id, func(txCtx context.Context) error {
		rt, err := s.roomTypeRepo.UpdateStock(txCtx, id, total)
		if err != nil {
			return err
		}
		result = rt
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("UpdateStock", id, err)
	}
	return models.FromDomainRoomType(result), nil
}

func (s *Service) mapUpdateError(op string, id int64, err error) error {
	if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
		s.logger.Warn("%s: room type id=%d not found", op, id)
		return ErrRoomTypeNotFound
	}
	if pgerrors.IsSerializationFailure(err) {
		s.logger.Warn("%s: room type id=%d conflicts with concurrent booking: %v", op, id, err)
		return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
	}
	s.logger.Error("%s: repository error for room type id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func validateStock(total int) error {
	if total < 0 {
		return ErrInvalidStock
	}
	return nil
}
