package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/harishnemade100/fitness-studio-booking/internal/auth"
	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/handler/dto"
	hmocks "github.com/harishnemade100/fitness-studio-booking/internal/handler/mocks"
	"github.com/harishnemade100/fitness-studio-booking/internal/middleware"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*hmocks.MockUserSvc, *hmocks.MockClassSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	userSvc := hmocks.NewMockUserSvc(t)
	classSvc := hmocks.NewMockClassSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(userSvc, classSvc, bookingSvc, "UTC")

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)
		api.GET("/classes", h.ListClasses)
		api.POST("/classes",
			middleware.Auth(testSecret),
			middleware.RequireRoles(string(domain.RoleInstructor), string(domain.RoleAdmin)),
			h.CreateClass,
		)
		api.POST("/bookings", h.BookClass)
		api.GET("/bookings", h.ListBookings)
		api.DELETE("/bookings/:id", h.CancelBooking)
	}

	return userSvc, classSvc, bookingSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func instructorToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewAccessToken(testSecret, "test", time.Hour, auth.Claims{
		UserID: 1,
		Email:  "coach@example.com",
		Role:   string(domain.RoleInstructor),
	})
	require.NoError(t, err)
	return token
}

// --- Users ---

func TestHandler_Register_Success(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	user := &domain.User{
		ID:        42,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Role:      domain.RoleClient,
		CreatedAt: time.Now().UTC(),
	}

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "str0ng-pass",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "client", resp.Role)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", dto.RegisterRequest{
		Name:     "John Doe",
		Email:    "taken@example.com",
		Password: "str0ng-pass",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_BadBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users/register", map[string]string{
		"name": "John Doe",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	user := &domain.User{ID: 42, Email: "john.doe@example.com", Role: domain.RoleClient}
	userSvc.EXPECT().Login(mock.Anything, "john.doe@example.com", "str0ng-pass").Return("a.b.c", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Email:    "john.doe@example.com",
		Password: "str0ng-pass",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "john.doe@example.com", "wrong").Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", dto.LoginRequest{
		Email:    "john.doe@example.com",
		Password: "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Classes ---

func TestHandler_CreateClass_Success(t *testing.T) {
	_, classSvc, _, r := setupRouter(t)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	class := &domain.Class{
		ID:             7,
		Name:           "Morning Yoga",
		StartTime:      start,
		Instructor:     "Alice Johnson",
		TotalSlots:     20,
		AvailableSlots: 20,
	}

	classSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(class, nil)

	w := doJSON(t, r, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Name:       "Morning Yoga",
		StartTime:  start.Format(time.RFC3339),
		Instructor: "Alice Johnson",
		TotalSlots: 20,
	}, map[string]string{"Authorization": "Bearer " + instructorToken(t)})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, 20, resp.AvailableSlots)
}

func TestHandler_CreateClass_NoToken(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Name:       "Morning Yoga",
		StartTime:  time.Now().Add(time.Hour).Format(time.RFC3339),
		Instructor: "Alice Johnson",
		TotalSlots: 20,
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateClass_ClientRoleForbidden(t *testing.T) {
	_, _, _, r := setupRouter(t)

	token, err := auth.NewAccessToken(testSecret, "test", time.Hour, auth.Claims{
		UserID: 2,
		Email:  "member@example.com",
		Role:   string(domain.RoleClient),
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Name:       "Morning Yoga",
		StartTime:  time.Now().Add(time.Hour).Format(time.RFC3339),
		Instructor: "Alice Johnson",
		TotalSlots: 20,
	}, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateClass_BadStartTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Name:       "Morning Yoga",
		StartTime:  "tomorrow at 6",
		Instructor: "Alice Johnson",
		TotalSlots: 20,
	}, map[string]string{"Authorization": "Bearer " + instructorToken(t)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListClasses_Success(t *testing.T) {
	_, classSvc, _, r := setupRouter(t)

	classes := []*domain.Class{
		{ID: 1, Name: "Morning Yoga", StartTime: time.Now().Add(time.Hour), Instructor: "Alice Johnson", TotalSlots: 20, AvailableSlots: 12},
		{ID: 2, Name: "Evening Zumba", StartTime: time.Now().Add(2 * time.Hour), Instructor: "Bob Smith", TotalSlots: 25, AvailableSlots: 0},
	}

	classSvc.EXPECT().ListUpcoming(mock.Anything, "UTC").Return(classes, nil)

	w := doJSON(t, r, http.MethodGet, "/api/classes", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Morning Yoga", resp[0].Name)
	assert.Equal(t, 0, resp[1].AvailableSlots)
}

func TestHandler_ListClasses_TZQuery(t *testing.T) {
	_, classSvc, _, r := setupRouter(t)

	classSvc.EXPECT().ListUpcoming(mock.Anything, "Asia/Kolkata").Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/classes?tz=Asia%2FKolkata", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// --- Bookings ---

func TestHandler_BookClass_Created(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	admission := &domain.Admission{
		Status: domain.AdmissionCreated,
		Detail: domain.BookingDetail{
			BookingID: 101,
			ClassID:   1,
			ClassName: "Morning Yoga",
			UserName:  "John Doe",
			UserEmail: "john.doe@example.com",
			BookedAt:  time.Now().UTC(),
		},
	}

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(admission, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     1,
		ClientName:  "John Doe",
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, int64(101), resp.BookingID)
}

func TestHandler_BookClass_AlreadyBooked(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	admission := &domain.Admission{
		Status: domain.AdmissionAlreadyBooked,
		Detail: domain.BookingDetail{BookingID: 101, ClassID: 1},
	}

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(admission, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     1,
		ClientName:  "John Doe",
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_booked", resp.Status)
}

func TestHandler_BookClass_ClassNotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrClassNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     99,
		ClientName:  "John Doe",
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BookClass_NoSlots(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrNoSlotsAvailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     1,
		ClientName:  "John Doe",
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookClass_UserNotRegistered(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     1,
		ClientName:  "Ghost",
		ClientEmail: "ghost@example.com",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookClass_InvalidEmail(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.BookRequest{
		ClassID:     1,
		ClientName:  "John Doe",
		ClientEmail: "not-an-email",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	details := []*domain.BookingDetail{
		{BookingID: 101, ClassID: 1, ClassName: "Morning Yoga", UserEmail: "john.doe@example.com", BookedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByEmail(mock.Anything, "john.doe@example.com").Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?email=john.doe%40example.com", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Morning Yoga", resp[0].ClassName)
	// History lines carry no admission status, that belongs to the booking call.
	assert.NotContains(t, w.Body.String(), `"status"`)
}

func TestHandler_ListBookings_MissingEmail(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_Empty(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ListByEmail(mock.Anything, "john.doe@example.com").Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?email=john.doe%40example.com", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	detail := &domain.BookingDetail{BookingID: 101, ClassID: 1}
	bookingSvc.EXPECT().Cancel(mock.Anything, int64(101), "john.doe@example.com").Return(detail, nil)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/101", dto.CancelBookingRequest{
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
}

func TestHandler_CancelBooking_BadID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/abc", dto.CancelBookingRequest{
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, int64(7), "john.doe@example.com").Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/7", dto.CancelBookingRequest{
		ClientEmail: "john.doe@example.com",
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
