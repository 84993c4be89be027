package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"flight_id", "airline", "flight_number", "scheduled_time",
		"pax_count", "baggage_count", "aircraft_type", "created_at",
		"airline_code", "airline_name", "color_code",
	})
}

func TestFlightList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	scheduled := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

	t.Run("All Flights", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM flights f\s+LEFT JOIN airlines a`).
			WillReturnRows(flightRows().
				AddRow("KE001-20250315", "KE", "KE001", scheduled, 180, 120, "B777", scheduled, "KE", "Korean Air", "#0F4C81").
				AddRow("XX999-20250315", "XX", "XX999", scheduled, 50, 30, nil, scheduled, nil, nil, nil))

		flights, err := repo.List(nil)
		require.NoError(t, err)
		require.Len(t, flights, 2)

		require.NotNil(t, flights[0].AirlineInfo)
		assert.Equal(t, "Korean Air", flights[0].AirlineInfo.AirlineName)
		assert.Equal(t, "#0F4C81", flights[0].AirlineInfo.ColorCode)
		require.NotNil(t, flights[0].AircraftType)
		assert.Equal(t, "B777", *flights[0].AircraftType)

		// Unjoined airline yields no nested info
		assert.Nil(t, flights[1].AirlineInfo)
		assert.Nil(t, flights[1].AircraftType)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Date Window Bounds", func(t *testing.T) {
		day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

		mock.ExpectQuery(`SELECT (.+) FROM flights f\s+LEFT JOIN airlines a (.+) WHERE f\.scheduled_time >= \$1 AND f\.scheduled_time < \$2`).
			WithArgs(day, day.AddDate(0, 0, 1)).
			WillReturnRows(flightRows().
				AddRow("KE001-20250315", "KE", "KE001", scheduled, 180, 120, "B777", scheduled, "KE", "Korean Air", "#0F4C81"))

		flights, err := repo.List(&day)
		require.NoError(t, err)
		assert.Len(t, flights, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlightGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	scheduled := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM flights f\s+LEFT JOIN airlines a (.+) WHERE f\.flight_id`).
			WithArgs("KE001-20250315").
			WillReturnRows(flightRows().
				AddRow("KE001-20250315", "KE", "KE001", scheduled, 180, 120, nil, scheduled, "KE", "Korean Air", "#0F4C81"))

		flight, err := repo.GetByID("KE001-20250315")
		require.NoError(t, err)
		assert.Equal(t, "KE001-20250315", flight.FlightID)
		assert.Equal(t, 180, flight.PaxCount)
		require.NotNil(t, flight.AirlineInfo)
		assert.Equal(t, "KE", flight.AirlineInfo.AirlineCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM flights f`).
			WithArgs("MISSING").
			WillReturnError(sql.ErrNoRows)

		flight, err := repo.GetByID("MISSING")
		assert.Equal(t, sql.ErrNoRows, err)
		assert.Nil(t, flight)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlightExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("KE001-20250315").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists("KE001-20250315")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlightCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	scheduled := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
	createdAt := time.Now()

	mock.ExpectQuery(`INSERT INTO flights`).
		WithArgs("KE001-20250315", "KE", "KE001", scheduled, 180, 120, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	flight := &models.Flight{
		FlightID:      "KE001-20250315",
		Airline:       "KE",
		FlightNumber:  "KE001",
		ScheduledTime: scheduled,
		PaxCount:      180,
		BaggageCount:  120,
	}
	err = repo.Create(flight)
	require.NoError(t, err)
	assert.Equal(t, createdAt, flight.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlightBulkCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	scheduled := time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
	createdAt := time.Now()

	t.Run("Skips Existing Flights", func(t *testing.T) {
		mock.ExpectBegin()
		// First flight already exists and is skipped
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("KE001-20250315").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		// Second flight is new and gets inserted
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("OZ202-20250315").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO flights`).
			WithArgs("OZ202-20250315", "OZ", "OZ202", scheduled, 200, 150, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
		mock.ExpectCommit()

		flights := []*models.Flight{
			{FlightID: "KE001-20250315", Airline: "KE", FlightNumber: "KE001", ScheduledTime: scheduled, PaxCount: 180, BaggageCount: 120},
			{FlightID: "OZ202-20250315", Airline: "OZ", FlightNumber: "OZ202", ScheduledTime: scheduled, PaxCount: 200, BaggageCount: 150},
		}

		created, err := repo.BulkCreate(flights)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "OZ202-20250315", created[0].FlightID)
		assert.Equal(t, createdAt, created[0].CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls Back On Insert Failure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("KE001-20250315").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO flights`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		flights := []*models.Flight{
			{FlightID: "KE001-20250315", Airline: "KE", FlightNumber: "KE001", ScheduledTime: scheduled},
		}

		created, err := repo.BulkCreate(flights)
		assert.Error(t, err)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFlightDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDB := newMockDatabase(db)
	repo := NewFlightRepository(mockDB)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM flights`).
			WithArgs("KE001-20250315").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete("KE001-20250315")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM flights`).
			WithArgs("MISSING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete("MISSING")
		assert.Equal(t, sql.ErrNoRows, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
