package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flightRepo  *database.FlightRepository
	airlineRepo *database.AirlineRepository
}

func NewFlightHandler(flightRepo *database.FlightRepository, airlineRepo *database.AirlineRepository) *FlightHandler {
	return &FlightHandler{
		flightRepo:  flightRepo,
		airlineRepo: airlineRepo,
	}
}

// parseDateFilter parses an optional ?date=YYYY-MM-DD query parameter into
// the start of that day in server-local time. A missing parameter yields nil.
func parseDateFilter(c *gin.Context) (*time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return nil, true
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return nil, false
	}

	return &day, true
}

// GetFlights retrieves all flights, optionally filtered by date
// GET /flights?date=YYYY-MM-DD
func (h *FlightHandler) GetFlights(c *gin.Context) {
	day, ok := parseDateFilter(c)
	if !ok {
		return
	}

	flights, err := h.flightRepo.List(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flights"})
		return
	}

	c.JSON(http.StatusOK, flights)
}

// GetFlightByID retrieves a specific flight with its airline info
// GET /flights/:id
func (h *FlightHandler) GetFlightByID(c *gin.Context) {
	flightID := c.Param("id")

	flight, err := h.flightRepo.GetByID(flightID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flight"})
		return
	}

	c.JSON(http.StatusOK, flight)
}

// CreateFlight creates a new flight
// POST /flights
func (h *FlightHandler) CreateFlight(c *gin.Context) {
	var req models.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if flight already exists
	exists, err := h.flightRepo.Exists(req.FlightID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing flight"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Flight already exists"})
		return
	}

	// Check if airline exists
	_, err = h.airlineRepo.GetByCode(req.Airline)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Airline '%s' not found", req.Airline)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check airline"})
		return
	}

	flight := req.ToFlight()
	if err := h.flightRepo.Create(flight); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight"})
		return
	}

	c.JSON(http.StatusCreated, flight)
}

// UploadFlights bulk-creates flights, silently skipping existing IDs
// POST /flights/upload
func (h *FlightHandler) UploadFlights(c *gin.Context) {
	var reqs []models.CreateFlightRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flights := make([]*models.Flight, 0, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		flights = append(flights, reqs[i].ToFlight())
	}

	created, err := h.flightRepo.BulkCreate(flights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload flights"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteFlight deletes a flight
// DELETE /flights/:id
func (h *FlightHandler) DeleteFlight(c *gin.Context) {
	flightID := c.Param("id")

	if err := h.flightRepo.Delete(flightID); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight"})
		return
	}

	c.Status(http.StatusNoContent)
}
