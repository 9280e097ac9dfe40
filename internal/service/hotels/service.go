package hotels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

// Service публичный каталог отелей
type Service struct {
	hotelRepo HotelRepository
	txManager TransactionManager
	logger    Logger
}

func NewService(hotelRepo HotelRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{hotelRepo: hotelRepo, txManager: txManager, logger: logger}
}

// List возвращает отели, опционально только из города city
func (s *Service) List(ctx context.Context, city string) ([]*models.HotelSummaryResponse, error) {
	var filter *string
	if c := strings.TrimSpace(city); c != "" {
		filter = &c
	}

	hotels, err := s.hotelRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for city=%q: %v", city, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHotelSummaries(hotels), nil
}

// GetByID возвращает отель с изображениями и активными типами номеров.
// Отель, изображения и типы номеров читаются из одного снимка
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HotelDetailResponse, error) {
	var hotel *domain.Hotel
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		hotel, err = s.hotelRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetByID: hotel id=%d not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetByID: repository error for hotel id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHotel(hotel), nil
}
