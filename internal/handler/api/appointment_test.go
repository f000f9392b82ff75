//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookwise/internal/handler/api"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubAppointmentQueries struct {
	byID func(ctx context.Context, id int64) (*queries.AppointmentView, error)
	list func(ctx context.Context, providerID int64, date string) ([]*queries.AppointmentView, error)
}

func (s *stubAppointmentQueries) GetByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	return s.byID(ctx, id)
}

func (s *stubAppointmentQueries) ListByProviderDate(ctx context.Context, providerID int64, date string) ([]*queries.AppointmentView, error) {
	return s.list(ctx, providerID, date)
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubAppointmentQueries
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubAppointmentQueries{}

	handler := api.NewAppointmentHandler(s.stub)
	s.router.GET("/appointments", handler.ListAppointments)
	s.router.GET("/appointments/:id", handler.GetAppointment)
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleView() *queries.AppointmentView {
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	return &queries.AppointmentView{
		ID:           41,
		ServiceID:    1,
		ServiceName:  "Consultation",
		ProviderID:   2,
		ProviderName: "Dr. Reyes",
		CustomerID:   77,
		BookingDate:  "2025-06-02",
		StartTime:    "14:00",
		EndTime:      "15:00",
		Status:       "pending",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	s.Run("success: returns the appointment view", func() {
		s.stub.byID = func(_ context.Context, id int64) (*queries.AppointmentView, error) {
			s.Equal(int64(41), id)
			return sampleView(), nil
		}

		rec := s.get("/appointments/41")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			ID          int64  `json:"id"`
			BookingDate string `json:"booking_date"`
			StartTime   string `json:"start_time"`
			Status      string `json:"status"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(int64(41), body.ID)
		s.Equal("2025-06-02", body.BookingDate)
		s.Equal("14:00", body.StartTime)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := s.get("/appointments/abc")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.JSONEq(`{"error":{"message":"Invalid appointment ID format"}}`, rec.Body.String())
	})

	s.Run("error: 404 when the appointment does not exist", func() {
		s.stub.byID = func(_ context.Context, _ int64) (*queries.AppointmentView, error) {
			return nil, errs.Mark(errs.New("no rows"), errs.ErrAppointmentNotFound)
		}

		rec := s.get("/appointments/999")

		s.Equal(http.StatusNotFound, rec.Code)
		s.JSONEq(`{"error":{"message":"Appointment not found"}}`, rec.Body.String())
	})

	s.Run("error: 400 on a rejected id", func() {
		s.stub.byID = func(_ context.Context, _ int64) (*queries.AppointmentView, error) {
			return nil, errs.Mark(errs.New("id must be positive"), errs.ErrInvalidInput)
		}

		rec := s.get("/appointments/0")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.JSONEq(`{"error":{"message":"Invalid appointment ID"}}`, rec.Body.String())
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.stub.byID = func(_ context.Context, _ int64) (*queries.AppointmentView, error) {
			return nil, errs.New("boom")
		}

		rec := s.get("/appointments/41")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.JSONEq(`{"error":{"message":"Internal server error"}}`, rec.Body.String())
	})
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	s.Run("success: returns the provider's day", func() {
		s.stub.list = func(_ context.Context, providerID int64, date string) ([]*queries.AppointmentView, error) {
			s.Equal(int64(2), providerID)
			s.Equal("2025-06-02", date)
			return []*queries.AppointmentView{sampleView()}, nil
		}

		rec := s.get("/appointments?provider_id=2&date=2025-06-02")

		s.Equal(http.StatusOK, rec.Code)
		var body []struct {
			ID int64 `json:"id"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Require().Len(body, 1)
		s.Equal(int64(41), body[0].ID)
	})

	s.Run("success: empty day yields empty list", func() {
		s.stub.list = func(_ context.Context, _ int64, _ string) ([]*queries.AppointmentView, error) {
			return nil, nil
		}

		rec := s.get("/appointments?provider_id=2&date=2025-06-03")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on missing query parameters", func() {
		rec := s.get("/appointments?provider_id=2")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.JSONEq(`{"error":{"message":"Invalid query parameters"}}`, rec.Body.String())
	})

	s.Run("error: 400 on malformed date", func() {
		s.stub.list = func(_ context.Context, _ int64, _ string) ([]*queries.AppointmentView, error) {
			return nil, errs.Mark(errs.New("bad date"), errs.ErrInvalidInput)
		}

		rec := s.get("/appointments?provider_id=2&date=junk")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.JSONEq(`{"error":{"message":"Invalid request parameters"}}`, rec.Body.String())
	})
}
