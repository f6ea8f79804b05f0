package bookingservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testRequest() *CreateRequest {
	return &CreateRequest{
		CourseID:         "c1",
		BookingDate:      "2026-05-11",
		TimeSlot:         TimeSlot{StartTime: "09:00", EndTime: "11:00"},
		Spot:             "sylt",
		InstructorID:     "i1",
		NumberOfStudents: 2,
		StudentNames:     []string{"Mads", "Lena"},
		TotalPrice:       160,
		DepositAmount:    48,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/bookings", r.URL.Path)

		var req CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.CourseID)
		assert.Equal(t, 48.0, req.DepositAmount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Booking{
			ID:          "b-42",
			CourseID:    req.CourseID,
			BookingDate: req.BookingDate,
			Status:      "pending",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, nopLogger{})

	booking, err := client.CreateBooking(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "b-42", booking.ID)
	assert.Equal(t, "pending", booking.Status)
}

func TestCreateBooking_RejectionCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Instructor is no longer available for this slot"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, nopLogger{})

	_, err := client.CreateBooking(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrBookingRejected)
	assert.Contains(t, err.Error(), "Instructor is no longer available for this slot")
}

func TestCreateBooking_RejectionWithoutDetailKeepsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad payload"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, nopLogger{})

	_, err := client.CreateBooking(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrBookingRejected)
	assert.Contains(t, err.Error(), "bad payload")
}

func TestCreateBooking_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, nopLogger{})

	_, err := client.CreateBooking(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrInvalidResponse)
}
