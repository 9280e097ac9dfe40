package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	roomTypeRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/roomtype"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerrors"
)

// Engine считает занятость типов номеров и допускает новые бронирования.
//
// Бронирование допускается, если число CONFIRMED бронирований того же типа номера,
// пересекающихся с запрошенными датами, строго меньше total. Проверка и вставка
// выполняются под защитой guard; без нее (GuardNone) два конкурентных запроса
// на последний номер могут оба пройти проверку
type Engine struct {
	bookingRepo  BookingRepository
	roomTypeRepo RoomTypeRepository
	txManager    TransactionManager
	guard        Guard
	observer     AdmissionObserver
	logger       Logger
}

// NewEngine создает движок доступности. observer может быть nil
func NewEngine(
	bookingRepo BookingRepository,
	roomTypeRepo RoomTypeRepository,
	txManager TransactionManager,
	guard Guard,
	observer AdmissionObserver,
	logger Logger,
) *Engine {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Engine{
		bookingRepo:  bookingRepo,
		roomTypeRepo: roomTypeRepo,
		txManager:    txManager,
		guard:        guard,
		observer:     observer,
		logger:       logger,
	}
}

// Guard возвращает активный режим защиты
func (e *Engine) Guard() Guard {
	return e.guard
}

// CountOverlapping число CONFIRMED бронирований типа номера, делящих с dates хотя бы одну ночь
func (e *Engine) CountOverlapping(ctx context.Context, roomTypeID int64, dates domain.DateRange) (int, error) {
	count, err := e.bookingRepo.CountOverlapping(ctx, roomTypeID, dates)
	if err != nil {
		return 0, e.mapRepoError("CountOverlapping", err)
	}
	return count, nil
}

// RemainingCapacity остаток номеров на даты: total - пересечения (без ограничения снизу)
func (e *Engine) RemainingCapacity(ctx context.Context, rt *domain.RoomType, dates domain.DateRange) (domain.Capacity, error) {
	overlapping, err := e.CountOverlapping(ctx, rt.ID, dates)
	if err != nil {
		return domain.Capacity{}, err
	}
	return domain.NewCapacity(rt, dates, overlapping), nil
}

// TryAdmitBooking проверяет тип номера и остаток и создает CONFIRMED бронирование.
// Тип номера перечитывается внутри защищенной секции, чтобы total и is_active
// соответствовали моменту вставки
func (e *Engine) TryAdmitBooking(ctx context.Context, req *AdmissionRequest) (*domain.Booking, error) {
	if err := validateAdmissionRequest(req); err != nil {
		e.observer.ObserveAdmission(OutcomeInvalid)
		return nil, err
	}

	e.logger.Info("TryAdmitBooking: room_type=%d, user=%d, dates=%s, guard=%s",
		req.RoomTypeID, req.UserID, req.Dates, e.guard)

	var result *domain.Booking

	err := e.guarded(ctx, req.RoomTypeID, func(txCtx context.Context) error {
		// 1. Тип номера должен существовать и быть активным
		roomType, err := e.roomTypeRepo.GetByID(txCtx, req.RoomTypeID)
		if err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				e.logger.Warn("TryAdmitBooking: room type id=%d not found", req.RoomTypeID)
				return ErrRoomTypeNotFound
			}
			return e.mapRepoError("TryAdmitBooking: get room type", err)
		}
		if !roomType.IsActive {
			e.logger.Warn("TryAdmitBooking: room type id=%d is inactive", req.RoomTypeID)
			return ErrRoomTypeInactive
		}

		// 2. Считаем пересечения
		overlapping, err := e.bookingRepo.CountOverlapping(txCtx, roomType.ID, req.Dates)
		if err != nil {
			return e.mapRepoError("TryAdmitBooking: count overlapping", err)
		}

		// При total = 5 допустимо overlapping = 0..4
		if !roomType.CanAdmit(overlapping) {
			e.logger.Warn("TryAdmitBooking: room type id=%d sold out for %s, %d/%d taken",
				roomType.ID, req.Dates, overlapping, roomType.Total)
			return fmt.Errorf("%w: %d/%d taken", ErrCapacityExhausted, overlapping, roomType.Total)
		}

		// 3. Создаем бронирование
		created, err := e.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:       req.UserID,
			RoomTypeID:   roomType.ID,
			CheckIn:      req.Dates.CheckIn,
			CheckOut:     req.Dates.CheckOut,
			Guests:       normalizeGuests(req.Guests),
			ContactName:  req.ContactName,
			ContactPhone: req.ContactPhone,
			Status:       domain.StatusConfirmed,
		})
		if err != nil {
			return e.mapRepoError("TryAdmitBooking: create booking", err)
		}

		created.RoomType = roomType
		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации может прийти на COMMIT, уже после fn
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			err = fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		}
		e.observer.ObserveAdmission(outcomeOf(err))
		if errors.Is(err, ErrInternal) || !isKnown(err) {
			e.logger.Error("TryAdmitBooking: room_type=%d failed: %v", req.RoomTypeID, err)
		}
		if !isKnown(err) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	e.observer.ObserveAdmission(OutcomeAdmitted)
	e.logger.Info("TryAdmitBooking: created booking id=%d for room_type=%d", result.ID, result.RoomTypeID)

	return result, nil
}

// WithRoomTypeGuard выполняет fn под той же защитой, что и TryAdmitBooking для roomTypeID.
// Нужна изменениям типа номера, которые читает допуск (total, is_active).
// Конфликт сериализации возвращается как pgerrors.ErrSerializationFailure
func (e *Engine) WithRoomTypeGuard(ctx context.Context, roomTypeID int64, fn func(ctx context.Context) error) error {
	return e.guarded(ctx, roomTypeID, fn)
}

func (e *Engine) guarded(ctx context.Context, roomTypeID int64, fn func(ctx context.Context) error) error {
	switch e.guard {
	case GuardAdvisoryLock:
		return e.txManager.DoWithAdvisoryLock(ctx, roomTypeID, fn)
	case GuardSerializable:
		return e.txManager.DoSerializable(ctx, fn)
	default:
		return fn(ctx)
	}
}

func (e *Engine) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, pgerrors.ErrSerializationFailure):
		return fmt.Errorf("%w: %s: %v", ErrConcurrentBooking, op, err)
	case errors.Is(err, bookingRepo.ErrInvalidReference):
		return fmt.Errorf("%w: %s: %v", ErrInvalidReference, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func validateAdmissionRequest(req *AdmissionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if !req.Dates.CheckIn.Before(req.Dates.CheckOut) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidDateRange)
	}
	if req.ContactName == "" || req.ContactPhone == "" {
		return fmt.Errorf("%w: contact name and phone are required", ErrInvalidInput)
	}
	return nil
}

func normalizeGuests(guests int) int {
	if guests < domain.MinGuests {
		return domain.DefaultGuests
	}
	return guests
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExhausted):
		return OutcomeCapacityExhausted
	case errors.Is(err, ErrRoomTypeNotFound), errors.Is(err, ErrRoomTypeInactive):
		return OutcomeRoomTypeRejected
	case errors.Is(err, ErrConcurrentBooking):
		return OutcomeConflict
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidReference):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

func isKnown(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrRoomTypeNotFound,
		ErrRoomTypeInactive,
		ErrCapacityExhausted,
		ErrConcurrentBooking,
		ErrInvalidReference,
		ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type nopObserver struct{}

func (nopObserver) ObserveAdmission(string) {}
