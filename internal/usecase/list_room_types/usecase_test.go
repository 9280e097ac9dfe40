package list_room_types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) List(ctx context.Context, filter domain.RoomTypesFilter) ([]*domain.RoomType, error) {
	args := m.Called(ctx, filter)
	if rts := args.Get(0); rts != nil {
		return rts.([]*domain.RoomType), args.Error(1)
	}
	return nil, args.Error(1)
}

// overlapEngine возвращает заранее заданное число пересечений для каждого типа номера
type overlapEngine struct {
	overlapping map[int64]int
	err         error
}

func (e *overlapEngine) RemainingCapacity(_ context.Context, rt *domain.RoomType, dates domain.DateRange) (domain.Capacity, error) {
	if e.err != nil {
		return domain.Capacity{}, e.err
	}
	return domain.NewCapacity(rt, dates, e.overlapping[rt.ID]), nil
}

func roomTypes() []*domain.RoomType {
	return []*domain.RoomType{
		{ID: 1, HotelID: 1, Name: "Standard", Total: 5, IsActive: true},
		{ID: 2, HotelID: 1, Name: "Suite", Total: 1, IsActive: true},
		{ID: 3, HotelID: 1, Name: "Attic", Total: 2, IsActive: false},
	}
}

func TestExecute_ListingMode(t *testing.T) {
	repo := &repoMock{}
	repo.On("List", mock.Anything, domain.RoomTypesFilter{IncludeHotel: true}).Return(roomTypes(), nil)
	uc := NewUseCase(repo, &overlapEngine{}, 2, logger.NewNop())

	// задана только одна дата -> режим списка
	resp, err := uc.Execute(context.Background(), &Request{CheckIn: ptr.Ptr("2025-09-10")})

	require.NoError(t, err)
	assert.Nil(t, resp.Dates)
	require.Len(t, resp.RoomTypes, 3)
	for _, item := range resp.RoomTypes {
		assert.Nil(t, item.Remaining)
		assert.Nil(t, item.SoldOut)
	}
}

func TestExecute_PreviewMode(t *testing.T) {
	repo := &repoMock{}
	hotelID := int64(1)
	repo.On("List", mock.Anything, domain.RoomTypesFilter{HotelID: &hotelID, IncludeHotel: true}).Return(roomTypes(), nil)
	engine := &overlapEngine{overlapping: map[int64]int{1: 3, 2: 1, 3: 4}}
	uc := NewUseCase(repo, engine, 2, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID:  &hotelID,
		CheckIn:  ptr.Ptr("2025-09-10"),
		CheckOut: ptr.Ptr("2025-09-12"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Dates)
	require.Len(t, resp.RoomTypes, 3)

	want := []struct {
		remaining int
		soldOut   bool
	}{
		{remaining: 2, soldOut: false},
		{remaining: 0, soldOut: true},
		{remaining: -2, soldOut: true},
	}
	for i, w := range want {
		item := resp.RoomTypes[i]
		require.NotNil(t, item.Remaining)
		assert.Equal(t, w.remaining, *item.Remaining, item.RoomType.Name)
		assert.Equal(t, w.soldOut, *item.SoldOut, item.RoomType.Name)
	}
}

func TestExecute_InvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{name: "bad format", checkIn: "2025/09/10", checkOut: "2025-09-12", wantErr: ErrInvalidDate},
		{name: "reversed", checkIn: "2025-09-12", checkOut: "2025-09-10", wantErr: ErrInvalidDateRange},
		{name: "same day", checkIn: "2025-09-10", checkOut: "2025-09-10", wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{}
			uc := NewUseCase(repo, &overlapEngine{}, 2, logger.NewNop())

			_, err := uc.Execute(context.Background(), &Request{CheckIn: &tt.checkIn, CheckOut: &tt.checkOut})

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_EngineFailure(t *testing.T) {
	repo := &repoMock{}
	repo.On("List", mock.Anything, mock.Anything).Return(roomTypes(), nil)
	uc := NewUseCase(repo, &overlapEngine{err: errors.New("db down")}, 2, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{CheckIn: ptr.Ptr("2025-09-10"), CheckOut: ptr.Ptr("2025-09-12")})

	assert.ErrorIs(t, err, ErrInternal)
}
