package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyColor indicates the color code is empty
	ErrEmptyColor = errors.New("color code cannot be empty")

	// ErrInvalidColorFormat indicates the color code is not a #RRGGBB hex value
	ErrInvalidColorFormat = errors.New("color code must be a hex value like #0F4C81")
)

// colorRegex matches #RGB and #RRGGBB hex color codes
var colorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ColorValidator handles hex color code validation
type ColorValidator struct{}

// NewColorValidator creates a new color validator instance
func NewColorValidator() *ColorValidator {
	return &ColorValidator{}
}

// Validate validates a hex color code such as "#0F4C81".
// Returns the sanitized (trimmed, uppercased) value and an error if invalid.
func (v *ColorValidator) Validate(code string) (string, error) {
	sanitized := strings.ToUpper(strings.TrimSpace(code))

	if sanitized == "" {
		return "", ErrEmptyColor
	}

	if !colorRegex.MatchString(sanitized) {
		return "", ErrInvalidColorFormat
	}

	return sanitized, nil
}
