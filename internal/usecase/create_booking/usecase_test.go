package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type engineMock struct {
	mock.Mock
}

func (m *engineMock) TryAdmitBooking(ctx context.Context, req *availability.AdmissionRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func validRequest() *Request {
	return &Request{
		Actor:        domain.Identity{ID: 7, Role: domain.RoleUser},
		RoomTypeID:   3,
		CheckIn:      "2025-09-10",
		CheckOut:     "2025-09-12",
		Guests:       2,
		ContactName:  "Ann",
		ContactPhone: "0900",
	}
}

func TestExecute_Success(t *testing.T) {
	engine := &engineMock{}
	uc := NewUseCase(engine, logger.NewNop())

	checkIn := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)

	engine.On("TryAdmitBooking", mock.Anything, mock.MatchedBy(func(r *availability.AdmissionRequest) bool {
		return r.UserID == 7 && r.RoomTypeID == 3 && r.Dates.CheckIn.Equal(checkIn) && r.Dates.CheckOut.Equal(checkOut)
	})).Return(&domain.Booking{
		ID: 100, UserID: 7, RoomTypeID: 3, CheckIn: checkIn, CheckOut: checkOut,
		Guests: 2, ContactName: "Ann", ContactPhone: "0900", Status: domain.StatusConfirmed,
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	engine.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
		field   string
	}{
		{name: "missing room type", mutate: func(r *Request) { r.RoomTypeID = 0 }, wantErr: ErrInvalidInput, field: "roomTypeId"},
		{name: "missing check in", mutate: func(r *Request) { r.CheckIn = "" }, wantErr: ErrInvalidInput, field: "checkIn"},
		{name: "missing contact name", mutate: func(r *Request) { r.ContactName = " " }, wantErr: ErrInvalidInput, field: "contactName"},
		{name: "missing phone", mutate: func(r *Request) { r.ContactPhone = "" }, wantErr: ErrInvalidInput, field: "contactPhone"},
		{name: "bad check in", mutate: func(r *Request) { r.CheckIn = "10.09.2025" }, wantErr: ErrInvalidDate, field: "checkIn"},
		{name: "bad check out", mutate: func(r *Request) { r.CheckOut = "tomorrow" }, wantErr: ErrInvalidDate, field: "checkOut"},
		{name: "same day", mutate: func(r *Request) { r.CheckOut = r.CheckIn }, wantErr: ErrInvalidDateRange, field: "checkOut"},
		{name: "reversed", mutate: func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, wantErr: ErrInvalidDateRange, field: "checkOut"},
		{name: "bad user id", mutate: func(r *Request) { r.UserID = ptr.Ptr(int64(-1)) }, wantErr: ErrInvalidInput, field: "userId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &engineMock{}
			uc := NewUseCase(engine, logger.NewNop())
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
			engine.AssertNotCalled(t, "TryAdmitBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_Owner(t *testing.T) {
	t.Run("user cannot book for another user", func(t *testing.T) {
		engine := &engineMock{}
		uc := NewUseCase(engine, logger.NewNop())
		req := validRequest()
		req.UserID = ptr.Ptr(int64(8))

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrForbidden)
		engine.AssertNotCalled(t, "TryAdmitBooking", mock.Anything, mock.Anything)
	})

	t.Run("explicit own id is accepted", func(t *testing.T) {
		engine := &engineMock{}
		uc := NewUseCase(engine, logger.NewNop())
		req := validRequest()
		req.UserID = ptr.Ptr(int64(7))

		engine.On("TryAdmitBooking", mock.Anything, mock.MatchedBy(func(r *availability.AdmissionRequest) bool {
			return r.UserID == 7
		})).Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.StatusConfirmed}, nil)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("admin books for another user", func(t *testing.T) {
		engine := &engineMock{}
		uc := NewUseCase(engine, logger.NewNop())
		req := validRequest()
		req.Actor.Role = domain.RoleAdmin
		req.UserID = ptr.Ptr(int64(8))

		engine.On("TryAdmitBooking", mock.Anything, mock.MatchedBy(func(r *availability.AdmissionRequest) bool {
			return r.UserID == 8
		})).Return(&domain.Booking{ID: 1, UserID: 8, Status: domain.StatusConfirmed}, nil)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(8), resp.UserID)
	})
}

func TestExecute_EngineErrors(t *testing.T) {
	tests := []struct {
		engineErr error
		wantErr   error
	}{
		{engineErr: availability.ErrRoomTypeNotFound, wantErr: ErrRoomTypeNotFound},
		{engineErr: availability.ErrRoomTypeInactive, wantErr: ErrRoomTypeInactive},
		{engineErr: fmt.Errorf("%w: 5/5 taken", availability.ErrCapacityExhausted), wantErr: ErrCapacityExhausted},
		{engineErr: availability.ErrConcurrentBooking, wantErr: ErrConcurrentBooking},
		{engineErr: availability.ErrInvalidReference, wantErr: ErrUserNotFound},
		{engineErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.wantErr.Error(), func(t *testing.T) {
			engine := &engineMock{}
			uc := NewUseCase(engine, logger.NewNop())
			engine.On("TryAdmitBooking", mock.Anything, mock.Anything).Return(nil, tt.engineErr)

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
