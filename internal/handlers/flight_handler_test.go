package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a mock database for testing
func setupTestDB(t *testing.T) (database.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return &database.PostgresDB{DB: sqlxDB}, mock
}

// setupTestContext creates a Gin test context for a request
func setupTestContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	c.Request, _ = http.NewRequest(method, target, buf)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	return response["error"]
}

func setupFlightHandler(db database.DB) *FlightHandler {
	flightRepo := database.NewFlightRepository(db)
	airlineRepo := database.NewAirlineRepository(db)
	return NewFlightHandler(flightRepo, airlineRepo)
}

func TestGetFlights_InvalidDate(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	handler := setupFlightHandler(db)
	c, w := setupTestContext(http.MethodGet, "/flights?date=15-03-2025", nil)

	handler.GetFlights(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errorMessage(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFlights_WithDateFilter(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT (.+) FROM flights f").
		WithArgs(day, day.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"flight_id", "airline", "flight_number", "scheduled_time",
			"pax_count", "baggage_count", "aircraft_type", "created_at",
			"airline_code", "airline_name", "color_code",
		}))

	handler := setupFlightHandler(db)
	c, w := setupTestContext(http.MethodGet, "/flights?date=2025-03-15", nil)

	handler.GetFlights(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFlightByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM flights f").
		WithArgs("MISSING").
		WillReturnError(sql.ErrNoRows)

	handler := setupFlightHandler(db)
	c, w := setupTestContext(http.MethodGet, "/flights/MISSING", nil)
	c.Params = gin.Params{{Key: "id", Value: "MISSING"}}

	handler.GetFlightByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Flight not found", errorMessage(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFlight_Duplicate(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KE001-20250315").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	handler := setupFlightHandler(db)
	req := models.CreateFlightRequest{
		FlightID:      "KE001-20250315",
		Airline:       "KE",
		FlightNumber:  "KE001",
		ScheduledTime: time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	c, w := setupTestContext(http.MethodPost, "/flights", req)

	handler.CreateFlight(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Flight already exists", errorMessage(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFlight_UnknownAirline(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("XX999-20250315").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("SELECT (.+) FROM airlines WHERE airline_code").
		WithArgs("XX").
		WillReturnError(sql.ErrNoRows)

	handler := setupFlightHandler(db)
	req := models.CreateFlightRequest{
		FlightID:      "XX999-20250315",
		Airline:       "XX",
		FlightNumber:  "XX999",
		ScheduledTime: time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	c, w := setupTestContext(http.MethodPost, "/flights", req)

	handler.CreateFlight(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Airline 'XX' not found", errorMessage(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFlight_NegativePaxCount(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	handler := setupFlightHandler(db)
	paxCount := -1
	req := models.CreateFlightRequest{
		FlightID:      "KE001-20250315",
		Airline:       "KE",
		FlightNumber:  "KE001",
		ScheduledTime: time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
		PaxCount:      &paxCount,
	}
	c, w := setupTestContext(http.MethodPost, "/flights", req)

	handler.CreateFlight(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "pax_count must be greater than or equal to 0", errorMessage(t, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadFlights_SkipsDuplicates(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	scheduled := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("KE001-20250315").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("OZ202-20250315").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO flights").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectCommit()

	handler := setupFlightHandler(db)
	reqs := []models.CreateFlightRequest{
		{FlightID: "KE001-20250315", Airline: "KE", FlightNumber: "KE001", ScheduledTime: scheduled},
		{FlightID: "OZ202-20250315", Airline: "OZ", FlightNumber: "OZ202", ScheduledTime: scheduled},
	}
	c, w := setupTestContext(http.MethodPost, "/flights/upload", reqs)

	handler.UploadFlights(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created []models.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 1)
	assert.Equal(t, "OZ202-20250315", created[0].FlightID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM flights").
			WithArgs("KE001-20250315").
			WillReturnResult(sqlmock.NewResult(0, 1))

		handler := setupFlightHandler(db)
		c, w := setupTestContext(http.MethodDelete, "/flights/KE001-20250315", nil)
		c.Params = gin.Params{{Key: "id", Value: "KE001-20250315"}}

		handler.DeleteFlight(c)
		// No body is written on success, so flush the status explicitly
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()

		mock.ExpectExec("DELETE FROM flights").
			WithArgs("MISSING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		handler := setupFlightHandler(db)
		c, w := setupTestContext(http.MethodDelete, "/flights/MISSING", nil)
		c.Params = gin.Params{{Key: "id", Value: "MISSING"}}

		handler.DeleteFlight(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Flight not found", errorMessage(t, w))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
