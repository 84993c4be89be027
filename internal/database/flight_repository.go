package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zygu0805/betashift/internal/models"
)

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db DB
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository(db DB) *FlightRepository {
	return &FlightRepository{db: db}
}

const flightWithAirlineColumns = `
	f.flight_id, f.airline, f.flight_number, f.scheduled_time,
	f.pax_count, f.baggage_count, f.aircraft_type, f.created_at,
	a.airline_code, a.airline_name, a.color_code
`

// scanFlightWithAirline scans one row of flightWithAirlineColumns
func scanFlightWithAirline(scan func(dest ...interface{}) error) (*models.Flight, error) {
	flight := &models.Flight{}
	var aircraftType sql.NullString
	var airlineCode, airlineName, colorCode sql.NullString

	err := scan(
		&flight.FlightID, &flight.Airline, &flight.FlightNumber, &flight.ScheduledTime,
		&flight.PaxCount, &flight.BaggageCount, &aircraftType, &flight.CreatedAt,
		&airlineCode, &airlineName, &colorCode,
	)
	if err != nil {
		return nil, err
	}

	if aircraftType.Valid {
		flight.AircraftType = &aircraftType.String
	}
	if airlineCode.Valid {
		flight.AirlineInfo = &models.Airline{
			AirlineCode: airlineCode.String,
			AirlineName: airlineName.String,
			ColorCode:   colorCode.String,
		}
	}

	return flight, nil
}

// List retrieves all flights with their airline info. When day is non-nil,
// only flights whose scheduled_time falls within [day, day+24h) are returned.
func (r *FlightRepository) List(day *time.Time) ([]models.Flight, error) {
	query := `
		SELECT ` + flightWithAirlineColumns + `
		FROM flights f
		LEFT JOIN airlines a ON a.airline_code = f.airline
	`
	args := []interface{}{}

	if day != nil {
		query += ` WHERE f.scheduled_time >= $1 AND f.scheduled_time < $2`
		args = append(args, *day, day.AddDate(0, 0, 1))
	}

	query += ` ORDER BY f.scheduled_time`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights: %w", err)
	}
	defer rows.Close()

	flights := []models.Flight{}
	for rows.Next() {
		flight, err := scanFlightWithAirline(rows.Scan)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *flight)
	}

	return flights, rows.Err()
}

// GetByID retrieves a flight with its airline info.
// Returns sql.ErrNoRows when the flight does not exist.
func (r *FlightRepository) GetByID(flightID string) (*models.Flight, error) {
	query := `
		SELECT ` + flightWithAirlineColumns + `
		FROM flights f
		LEFT JOIN airlines a ON a.airline_code = f.airline
		WHERE f.flight_id = $1
	`

	return scanFlightWithAirline(r.db.QueryRow(query, flightID).Scan)
}

// Exists reports whether a flight with the given ID exists
func (r *FlightRepository) Exists(flightID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM flights WHERE flight_id = $1)`, flightID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check flight %s: %w", flightID, err)
	}
	return exists, nil
}

// Create creates a new flight. The server-side created_at is read back into
// the passed model.
func (r *FlightRepository) Create(flight *models.Flight) error {
	query := `
		INSERT INTO flights (
			flight_id, airline, flight_number, scheduled_time,
			pax_count, baggage_count, aircraft_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		query,
		flight.FlightID, flight.Airline, flight.FlightNumber, flight.ScheduledTime,
		flight.PaxCount, flight.BaggageCount, flight.AircraftType,
	).Scan(&flight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}

	return nil
}

// BulkCreate inserts the given flights in a single transaction, silently
// skipping any whose flight_id already exists. Returns only the flights
// that were actually inserted.
func (r *FlightRepository) BulkCreate(flights []*models.Flight) ([]models.Flight, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin upload transaction: %w", err)
	}
	defer tx.Rollback()

	created := []models.Flight{}
	for _, flight := range flights {
		var exists bool
		err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM flights WHERE flight_id = $1)`, flight.FlightID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check flight %s: %w", flight.FlightID, err)
		}
		if exists {
			continue
		}

		err = tx.QueryRow(
			`INSERT INTO flights (
				flight_id, airline, flight_number, scheduled_time,
				pax_count, baggage_count, aircraft_type
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at`,
			flight.FlightID, flight.Airline, flight.FlightNumber, flight.ScheduledTime,
			flight.PaxCount, flight.BaggageCount, flight.AircraftType,
		).Scan(&flight.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flight %s: %w", flight.FlightID, err)
		}

		created = append(created, *flight)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit flight upload: %w", err)
	}

	return created, nil
}

// Delete deletes a flight. Returns sql.ErrNoRows when the flight does not exist.
func (r *FlightRepository) Delete(flightID string) error {
	result, err := r.db.Exec(`DELETE FROM flights WHERE flight_id = $1`, flightID)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
