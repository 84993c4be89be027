package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Zygu0805/betashift/internal/models"
)

// AssignmentRepository handles database operations for carousel assignments
type AssignmentRepository struct {
	db DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentWithDetailsColumns = `
	asg.assignment_id, asg.flight_id, asg.carousel_id, asg.start_time,
	asg.end_time, asg.assignment_type, asg.created_at, asg.updated_at,
	f.flight_id, f.airline, f.flight_number, f.scheduled_time,
	f.pax_count, f.baggage_count, f.aircraft_type, f.created_at,
	c.carousel_id, c.terminal, c.capacity, c.is_active
`

// scanAssignmentWithDetails scans one row of assignmentWithDetailsColumns
func scanAssignmentWithDetails(scan func(dest ...interface{}) error) (*models.Assignment, error) {
	assignment := &models.Assignment{}

	var flightID, airline, flightNumber, aircraftType sql.NullString
	var scheduledTime, flightCreatedAt sql.NullTime
	var paxCount, baggageCount sql.NullInt64

	var carouselID, terminal sql.NullString
	var capacity sql.NullInt64
	var isActive sql.NullBool

	err := scan(
		&assignment.AssignmentID, &assignment.FlightID, &assignment.CarouselID, &assignment.StartTime,
		&assignment.EndTime, &assignment.AssignmentType, &assignment.CreatedAt, &assignment.UpdatedAt,
		&flightID, &airline, &flightNumber, &scheduledTime,
		&paxCount, &baggageCount, &aircraftType, &flightCreatedAt,
		&carouselID, &terminal, &capacity, &isActive,
	)
	if err != nil {
		return nil, err
	}

	if flightID.Valid {
		flight := &models.Flight{
			FlightID:      flightID.String,
			Airline:       airline.String,
			FlightNumber:  flightNumber.String,
			ScheduledTime: scheduledTime.Time,
			PaxCount:      int(paxCount.Int64),
			BaggageCount:  int(baggageCount.Int64),
			CreatedAt:     flightCreatedAt.Time,
		}
		if aircraftType.Valid {
			flight.AircraftType = &aircraftType.String
		}
		assignment.Flight = flight
	}

	if carouselID.Valid {
		carousel := &models.Carousel{
			CarouselID: carouselID.String,
			Capacity:   int(capacity.Int64),
			IsActive:   isActive.Bool,
		}
		if terminal.Valid {
			carousel.Terminal = &terminal.String
		}
		assignment.Carousel = carousel
	}

	return assignment, nil
}

// List retrieves all assignments with flight and carousel details. When day
// is non-nil, only assignments whose start_time falls within [day, day+24h)
// are returned.
func (r *AssignmentRepository) List(day *time.Time) ([]models.Assignment, error) {
	query := `
		SELECT ` + assignmentWithDetailsColumns + `
		FROM assignments asg
		LEFT JOIN flights f ON f.flight_id = asg.flight_id
		LEFT JOIN carousels c ON c.carousel_id = asg.carousel_id
	`
	args := []interface{}{}

	if day != nil {
		query += ` WHERE asg.start_time >= $1 AND asg.start_time < $2`
		args = append(args, *day, day.AddDate(0, 0, 1))
	}

	query += ` ORDER BY asg.start_time`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		assignment, err := scanAssignmentWithDetails(rows.Scan)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}

	return assignments, rows.Err()
}

// GetByID retrieves an assignment with flight and carousel details.
// Returns sql.ErrNoRows when the assignment does not exist.
func (r *AssignmentRepository) GetByID(assignmentID int) (*models.Assignment, error) {
	query := `
		SELECT ` + assignmentWithDetailsColumns + `
		FROM assignments asg
		LEFT JOIN flights f ON f.flight_id = asg.flight_id
		LEFT JOIN carousels c ON c.carousel_id = asg.carousel_id
		WHERE asg.assignment_id = $1
	`

	return scanAssignmentWithDetails(r.db.QueryRow(query, assignmentID).Scan)
}

// Create creates a new assignment. The server-assigned ID and timestamps are
// read back into the passed model.
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (
			flight_id, carousel_id, start_time, end_time, assignment_type
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING assignment_id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		assignment.FlightID, assignment.CarouselID, assignment.StartTime,
		assignment.EndTime, assignment.AssignmentType,
	).Scan(&assignment.AssignmentID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

// Update applies a partial update to an assignment. Only non-nil fields are
// written; updated_at is refreshed on every call. Returns sql.ErrNoRows when
// the assignment does not exist.
func (r *AssignmentRepository) Update(assignmentID int, req *models.UpdateAssignmentRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if req.CarouselID != nil {
		updates = append(updates, fmt.Sprintf("carousel_id = $%d", argCount))
		args = append(args, *req.CarouselID)
		argCount++
	}

	if req.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d", argCount))
		args = append(args, *req.StartTime)
		argCount++
	}

	if req.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d", argCount))
		args = append(args, *req.EndTime)
		argCount++
	}

	if req.AssignmentType != nil {
		updates = append(updates, fmt.Sprintf("assignment_type = $%d", argCount))
		args = append(args, *req.AssignmentType)
		argCount++
	}

	// updated_at is refreshed even when no other field changed
	updates = append(updates, "updated_at = NOW()")

	args = append(args, assignmentID)

	query := fmt.Sprintf(`
		UPDATE assignments
		SET %s
		WHERE assignment_id = $%d
	`, strings.Join(updates, ", "), argCount)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
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

// Delete deletes an assignment. Returns sql.ErrNoRows when it does not exist.
func (r *AssignmentRepository) Delete(assignmentID int) error {
	result, err := r.db.Exec(`DELETE FROM assignments WHERE assignment_id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
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
