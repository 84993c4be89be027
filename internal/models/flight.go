package models

import (
	"errors"
	"time"
)

// Flight represents an arriving flight
type Flight struct {
	FlightID      string    `json:"flight_id" db:"flight_id"`
	Airline       string    `json:"airline" db:"airline"`
	FlightNumber  string    `json:"flight_number" db:"flight_number"`
	ScheduledTime time.Time `json:"scheduled_time" db:"scheduled_time"`
	PaxCount      int       `json:"pax_count" db:"pax_count"`
	BaggageCount  int       `json:"baggage_count" db:"baggage_count"`
	AircraftType  *string   `json:"aircraft_type,omitempty" db:"aircraft_type"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	// Related data (not in DB, populated by join queries)
	AirlineInfo *Airline `json:"airline_info,omitempty" db:"-"`
}

// CreateFlightRequest represents the request to create a new flight
type CreateFlightRequest struct {
	FlightID      string    `json:"flight_id" binding:"required,max=20"`
	Airline       string    `json:"airline" binding:"required,max=10"`
	FlightNumber  string    `json:"flight_number" binding:"required,max=10"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	PaxCount      *int      `json:"pax_count,omitempty"`
	BaggageCount  *int      `json:"baggage_count,omitempty"`
	AircraftType  *string   `json:"aircraft_type,omitempty" binding:"omitempty,max=20"`
}

// Validate validates the CreateFlightRequest
func (req *CreateFlightRequest) Validate() error {
	if req.PaxCount != nil && *req.PaxCount < 0 {
		return errors.New("pax_count must be greater than or equal to 0")
	}
	if req.BaggageCount != nil && *req.BaggageCount < 0 {
		return errors.New("baggage_count must be greater than or equal to 0")
	}
	if req.ScheduledTime.IsZero() {
		return errors.New("scheduled_time is required")
	}
	return nil
}

// ToFlight builds a Flight with defaults applied
func (req *CreateFlightRequest) ToFlight() *Flight {
	paxCount := 0
	if req.PaxCount != nil {
		paxCount = *req.PaxCount
	}

	baggageCount := 0
	if req.BaggageCount != nil {
		baggageCount = *req.BaggageCount
	}

	return &Flight{
		FlightID:      req.FlightID,
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		ScheduledTime: req.ScheduledTime,
		PaxCount:      paxCount,
		BaggageCount:  baggageCount,
		AircraftType:  req.AircraftType,
	}
}
