package database

import (
	"fmt"

	"github.com/Zygu0805/betashift/internal/models"
)

// AirlineRepository handles database operations for airlines
type AirlineRepository struct {
	db DB
}

// NewAirlineRepository creates a new AirlineRepository
func NewAirlineRepository(db DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

// defaultAirlines is the fixed seed catalog with brand colors
var defaultAirlines = []models.Airline{
	{AirlineCode: "KE", AirlineName: "Korean Air", ColorCode: "#0F4C81"},
	{AirlineCode: "OZ", AirlineName: "Asiana Airlines", ColorCode: "#C9252D"},
	{AirlineCode: "7C", AirlineName: "Jeju Air", ColorCode: "#FF6600"},
	{AirlineCode: "TW", AirlineName: "T'way Air", ColorCode: "#E60012"},
	{AirlineCode: "LJ", AirlineName: "Jin Air", ColorCode: "#FFD700"},
	{AirlineCode: "ZE", AirlineName: "Eastar Jet", ColorCode: "#00A651"},
	{AirlineCode: "BX", AirlineName: "Air Busan", ColorCode: "#FF6B35"},
	{AirlineCode: "RS", AirlineName: "Air Seoul", ColorCode: "#003366"},
}

// GetAll retrieves all airlines
func (r *AirlineRepository) GetAll() ([]models.Airline, error) {
	query := `
		SELECT airline_code, airline_name, color_code
		FROM airlines
		ORDER BY airline_code
	`

	airlines := []models.Airline{}
	if err := r.db.Select(&airlines, query); err != nil {
		return nil, fmt.Errorf("failed to fetch airlines: %w", err)
	}

	return airlines, nil
}

// GetByCode retrieves an airline by its code.
// Returns sql.ErrNoRows when the airline does not exist.
func (r *AirlineRepository) GetByCode(airlineCode string) (*models.Airline, error) {
	query := `
		SELECT airline_code, airline_name, color_code
		FROM airlines
		WHERE airline_code = $1
	`

	airline := &models.Airline{}
	if err := r.db.Get(airline, query, airlineCode); err != nil {
		return nil, err
	}

	return airline, nil
}

// Create creates a new airline
func (r *AirlineRepository) Create(airline *models.Airline) error {
	query := `
		INSERT INTO airlines (airline_code, airline_name, color_code)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(query, airline.AirlineCode, airline.AirlineName, airline.ColorCode); err != nil {
		return fmt.Errorf("failed to create airline: %w", err)
	}

	return nil
}

// SeedDefaults inserts the default airline catalog, skipping codes that
// already exist. The whole seed runs in one transaction and only the newly
// inserted airlines are returned, so running it twice is a no-op.
func (r *AirlineRepository) SeedDefaults() ([]models.Airline, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	created := []models.Airline{}
	for _, airline := range defaultAirlines {
		var exists bool
		err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM airlines WHERE airline_code = $1)`, airline.AirlineCode).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check airline %s: %w", airline.AirlineCode, err)
		}
		if exists {
			continue
		}

		_, err = tx.Exec(
			`INSERT INTO airlines (airline_code, airline_name, color_code) VALUES ($1, $2, $3)`,
			airline.AirlineCode, airline.AirlineName, airline.ColorCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed airline %s: %w", airline.AirlineCode, err)
		}

		created = append(created, airline)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit airline seed: %w", err)
	}

	return created, nil
}
