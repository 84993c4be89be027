package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Zygu0805/betashift/internal/models"
)

// CarouselRepository handles database operations for carousels
type CarouselRepository struct {
	db DB
}

// NewCarouselRepository creates a new CarouselRepository
func NewCarouselRepository(db DB) *CarouselRepository {
	return &CarouselRepository{db: db}
}

// GetAll retrieves all carousels
func (r *CarouselRepository) GetAll() ([]models.Carousel, error) {
	query := `
		SELECT carousel_id, terminal, capacity, is_active
		FROM carousels
		ORDER BY carousel_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch carousels: %w", err)
	}
	defer rows.Close()

	carousels := []models.Carousel{}
	for rows.Next() {
		var carousel models.Carousel
		var terminal sql.NullString

		if err := rows.Scan(&carousel.CarouselID, &terminal, &carousel.Capacity, &carousel.IsActive); err != nil {
			return nil, err
		}
		if terminal.Valid {
			carousel.Terminal = &terminal.String
		}

		carousels = append(carousels, carousel)
	}

	return carousels, rows.Err()
}

// GetByID retrieves a carousel by ID.
// Returns sql.ErrNoRows when the carousel does not exist.
func (r *CarouselRepository) GetByID(carouselID string) (*models.Carousel, error) {
	query := `
		SELECT carousel_id, terminal, capacity, is_active
		FROM carousels
		WHERE carousel_id = $1
	`

	carousel := &models.Carousel{}
	var terminal sql.NullString

	err := r.db.QueryRow(query, carouselID).Scan(
		&carousel.CarouselID, &terminal, &carousel.Capacity, &carousel.IsActive,
	)
	if err != nil {
		return nil, err
	}
	if terminal.Valid {
		carousel.Terminal = &terminal.String
	}

	return carousel, nil
}

// Create creates a new carousel
func (r *CarouselRepository) Create(carousel *models.Carousel) error {
	query := `
		INSERT INTO carousels (carousel_id, terminal, capacity, is_active)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.db.Exec(query, carousel.CarouselID, carousel.Terminal, carousel.Capacity, carousel.IsActive); err != nil {
		return fmt.Errorf("failed to create carousel: %w", err)
	}

	return nil
}

// Update applies a partial update to a carousel. Only fields present in the
// request are written; an explicitly null terminal is written as NULL.
// Returns sql.ErrNoRows when the carousel does not exist.
func (r *CarouselRepository) Update(carouselID string, req *models.UpdateCarouselRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Terminal.Set {
		updates = append(updates, fmt.Sprintf("terminal = $%d", argCount))
		args = append(args, req.Terminal.Ptr())
		argCount++
	}

	if req.Capacity != nil {
		updates = append(updates, fmt.Sprintf("capacity = $%d", argCount))
		args = append(args, *req.Capacity)
		argCount++
	}

	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *req.IsActive)
		argCount++
	}

	if len(updates) == 0 {
		// Nothing to change, but the caller still expects a not-found check
		_, err := r.GetByID(carouselID)
		return err
	}

	args = append(args, carouselID)

	query := fmt.Sprintf(`
		UPDATE carousels
		SET %s
		WHERE carousel_id = $%d
	`, strings.Join(updates, ", "), argCount)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update carousel: %w", err)
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

// SeedDefaults inserts carousels C1 through C24, skipping any that already
// exist: C1-C12 in terminal T1, C13-C24 in terminal T2, capacity 100, active.
// Runs in one transaction and returns only the newly inserted carousels.
func (r *CarouselRepository) SeedDefaults() ([]models.Carousel, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	created := []models.Carousel{}
	for i := 1; i <= 24; i++ {
		carouselID := fmt.Sprintf("C%d", i)

		var exists bool
		err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM carousels WHERE carousel_id = $1)`, carouselID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check carousel %s: %w", carouselID, err)
		}
		if exists {
			continue
		}

		terminal := "T1"
		if i > 12 {
			terminal = "T2"
		}

		_, err = tx.Exec(
			`INSERT INTO carousels (carousel_id, terminal, capacity, is_active) VALUES ($1, $2, $3, $4)`,
			carouselID, terminal, models.DefaultCarouselCapacity, true,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed carousel %s: %w", carouselID, err)
		}

		terminalCopy := terminal
		created = append(created, models.Carousel{
			CarouselID: carouselID,
			Terminal:   &terminalCopy,
			Capacity:   models.DefaultCarouselCapacity,
			IsActive:   true,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit carousel seed: %w", err)
	}

	return created, nil
}
