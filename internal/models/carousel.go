package models

import "errors"

// DefaultCarouselCapacity is used when a carousel is created without a capacity
const DefaultCarouselCapacity = 100

// Carousel represents a baggage carousel
type Carousel struct {
	CarouselID string  `json:"carousel_id" db:"carousel_id"`
	Terminal   *string `json:"terminal,omitempty" db:"terminal"`
	Capacity   int     `json:"capacity" db:"capacity"`
	IsActive   bool    `json:"is_active" db:"is_active"`
}

// CreateCarouselRequest represents the request to create a new carousel
type CreateCarouselRequest struct {
	CarouselID string  `json:"carousel_id" binding:"required,max=10"`
	Terminal   *string `json:"terminal,omitempty" binding:"omitempty,max=10"`
	Capacity   *int    `json:"capacity,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// UpdateCarouselRequest represents a partial update to a carousel.
// Only fields present in the payload are applied; an explicit null
// terminal clears the column.
type UpdateCarouselRequest struct {
	Terminal OptionalString `json:"terminal,omitzero"`
	Capacity *int           `json:"capacity,omitempty"`
	IsActive *bool          `json:"is_active,omitempty"`
}

// Validate validates the CreateCarouselRequest
func (req *CreateCarouselRequest) Validate() error {
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must be greater than or equal to 0")
	}
	return nil
}

// Validate validates the UpdateCarouselRequest
func (req *UpdateCarouselRequest) Validate() error {
	if req.Terminal.Valid && len(req.Terminal.Value) > 10 {
		return errors.New("terminal must be at most 10 characters")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must be greater than or equal to 0")
	}
	return nil
}

// ToCarousel builds a Carousel with defaults applied
func (req *CreateCarouselRequest) ToCarousel() *Carousel {
	capacity := DefaultCarouselCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &Carousel{
		CarouselID: req.CarouselID,
		Terminal:   req.Terminal,
		Capacity:   capacity,
		IsActive:   isActive,
	}
}
