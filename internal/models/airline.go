package models

import (
	"errors"

	"github.com/Zygu0805/betashift/pkg/validator"
)

// DefaultColorCode is used when an airline is created without a brand color
const DefaultColorCode = "#808080"

// Airline represents an airline and its UI display color
type Airline struct {
	AirlineCode string `json:"airline_code" db:"airline_code"`
	AirlineName string `json:"airline_name" db:"airline_name"`
	ColorCode   string `json:"color_code" db:"color_code"`
}

// CreateAirlineRequest represents the request to create a new airline
type CreateAirlineRequest struct {
	AirlineCode string  `json:"airline_code" binding:"required,max=10"`
	AirlineName string  `json:"airline_name" binding:"required,max=100"`
	ColorCode   *string `json:"color_code,omitempty" binding:"omitempty,max=7"`
}

// Validate validates the CreateAirlineRequest
func (req *CreateAirlineRequest) Validate() error {
	if req.AirlineCode == "" {
		return errors.New("airline_code is required")
	}

	if req.ColorCode != nil {
		colorValidator := validator.NewColorValidator()
		sanitized, err := colorValidator.Validate(*req.ColorCode)
		if err != nil {
			return err
		}
		req.ColorCode = &sanitized
	}

	return nil
}

// ToAirline builds an Airline with defaults applied
func (req *CreateAirlineRequest) ToAirline() *Airline {
	colorCode := DefaultColorCode
	if req.ColorCode != nil {
		colorCode = *req.ColorCode
	}

	return &Airline{
		AirlineCode: req.AirlineCode,
		AirlineName: req.AirlineName,
		ColorCode:   colorCode,
	}
}
