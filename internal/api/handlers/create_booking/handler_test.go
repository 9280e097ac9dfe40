package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{"roomTypeId":3,"checkIn":"2025-09-10","checkOut":"2025-09-12","guests":2,"contactName":"Ann","contactPhone":"0900"}`

func doRequest(h *Handler, body string, identity *domain.Identity) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	if identity != nil {
		r = r.WithContext(middleware.WithIdentity(r.Context(), *identity))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())
	actor := domain.Identity{ID: 7, Role: domain.RoleUser}

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.Actor == actor && req.UserID == nil && req.RoomTypeID == 3 &&
			req.CheckIn == "2025-09-10" && req.CheckOut == "2025-09-12" && req.Guests == 2
	})).Return(&createBooking.Response{
		ID:         100,
		UserID:     7,
		RoomTypeID: 3,
		CheckIn:    time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Status:     string(domain.StatusConfirmed),
		CreatedAt:  time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	w := doRequest(h, validBody, &actor)

	require.Equal(t, http.StatusOK, w.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(100), body.ID)
	assert.Equal(t, "2025-09-10", body.CheckIn)
	assert.Equal(t, "2025-09-12", body.CheckOut)
	assert.Equal(t, "CONFIRMED", body.Status)
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing field",
			err:         &createBooking.FieldError{Field: "contactName", Err: createBooking.ErrInvalidInput},
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgMissingField + ": contactName",
		},
		{
			name:        "bad date",
			err:         &createBooking.FieldError{Field: "checkIn", Err: createBooking.ErrInvalidDate},
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgInvalidDate + ": checkIn",
		},
		{
			name:        "reversed range",
			err:         &createBooking.FieldError{Field: "checkOut", Err: createBooking.ErrInvalidDateRange},
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgInvalidDateRange + ": checkOut",
		},
		{name: "forbidden", err: createBooking.ErrForbidden, wantStatus: http.StatusForbidden, wantMessage: msgForbidden},
		{name: "room type not found", err: createBooking.ErrRoomTypeNotFound, wantStatus: http.StatusBadRequest, wantMessage: msgRoomTypeNotFound},
		{name: "room type inactive", err: createBooking.ErrRoomTypeInactive, wantStatus: http.StatusBadRequest, wantMessage: msgRoomTypeInactive},
		{name: "no rooms left", err: createBooking.ErrCapacityExhausted, wantStatus: http.StatusConflict, wantMessage: msgNoRoomsLeft},
		{name: "concurrent", err: createBooking.ErrConcurrentBooking, wantStatus: http.StatusConflict, wantMessage: msgConcurrentBooking},
		{name: "user not found", err: createBooking.ErrUserNotFound, wantStatus: http.StatusBadRequest, wantMessage: msgUserNotFound},
		{
			name:        "internal",
			err:         fmt.Errorf("%w: connection reset", createBooking.ErrInternal),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h := NewHandler(uc, logger.NewNop())

			w := doRequest(h, validBody, &domain.Identity{ID: 7, Role: domain.RoleUser})

			assert.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())

	w := doRequest(h, `{"roomTypeId":`, &domain.Identity{ID: 7})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_MissingIdentity(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())

	w := doRequest(h, validBody, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_PassesUserIDForAdmin(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())
	admin := domain.Identity{ID: 1, Role: domain.RoleAdmin}

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID != nil && *req.UserID == 42 && req.Actor.IsAdmin()
	})).Return(&createBooking.Response{ID: 5, UserID: 42}, nil)

	w := doRequest(h, `{"userId":42,`+strings.TrimPrefix(validBody, "{"), &admin)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}
