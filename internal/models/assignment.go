package models

import (
	"errors"
	"time"
)

// AssignmentType represents how an assignment was produced
type AssignmentType string

const (
	AssignmentTypeManual AssignmentType = "MANUAL"
	AssignmentTypeAI     AssignmentType = "AI"
)

// Assignment represents a time-bounded allocation of a carousel to a flight
type Assignment struct {
	AssignmentID   int       `json:"assignment_id" db:"assignment_id"`
	FlightID       string    `json:"flight_id" db:"flight_id"`
	CarouselID     string    `json:"carousel_id" db:"carousel_id"`
	StartTime      time.Time `json:"start_time" db:"start_time"`
	EndTime        time.Time `json:"end_time" db:"end_time"`
	AssignmentType string    `json:"assignment_type" db:"assignment_type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Related data (not in DB, populated by join queries)
	Flight   *Flight   `json:"flight,omitempty" db:"-"`
	Carousel *Carousel `json:"carousel,omitempty" db:"-"`
}

// CreateAssignmentRequest represents the request to create a new assignment
type CreateAssignmentRequest struct {
	FlightID       string    `json:"flight_id" binding:"required,max=20"`
	CarouselID     string    `json:"carousel_id" binding:"required,max=10"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	AssignmentType *string   `json:"assignment_type,omitempty" binding:"omitempty,max=10"`
}

// UpdateAssignmentRequest represents a partial update to an assignment.
// Only non-nil fields are applied.
type UpdateAssignmentRequest struct {
	CarouselID     *string    `json:"carousel_id,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	AssignmentType *string    `json:"assignment_type,omitempty"`
}

// Validate validates the CreateAssignmentRequest
func (req *CreateAssignmentRequest) Validate() error {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return errors.New("start_time and end_time are required")
	}
	if req.AssignmentType != nil && len(*req.AssignmentType) > 10 {
		return errors.New("assignment_type must be at most 10 characters")
	}
	return nil
}

// Validate validates the UpdateAssignmentRequest
func (req *UpdateAssignmentRequest) Validate() error {
	if req.CarouselID != nil && len(*req.CarouselID) > 10 {
		return errors.New("carousel_id must be at most 10 characters")
	}
	if req.AssignmentType != nil && len(*req.AssignmentType) > 10 {
		return errors.New("assignment_type must be at most 10 characters")
	}
	return nil
}

// ToAssignment builds an Assignment with defaults applied
func (req *CreateAssignmentRequest) ToAssignment() *Assignment {
	assignmentType := string(AssignmentTypeManual)
	if req.AssignmentType != nil {
		assignmentType = *req.AssignmentType
	}

	return &Assignment{
		FlightID:       req.FlightID,
		CarouselID:     req.CarouselID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		AssignmentType: assignmentType,
	}
}
