package handlers

import (
	"database/sql"
	"net/http"

	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	airlineRepo *database.AirlineRepository
}

func NewAirlineHandler(airlineRepo *database.AirlineRepository) *AirlineHandler {
	return &AirlineHandler{airlineRepo: airlineRepo}
}

// GetAllAirlines retrieves all airlines with their color codes
// GET /airlines
func (h *AirlineHandler) GetAllAirlines(c *gin.Context) {
	airlines, err := h.airlineRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch airlines"})
		return
	}

	c.JSON(http.StatusOK, airlines)
}

// GetAirlineByCode retrieves a specific airline by code
// GET /airlines/:code
func (h *AirlineHandler) GetAirlineByCode(c *gin.Context) {
	airlineCode := c.Param("code")

	airline, err := h.airlineRepo.GetByCode(airlineCode)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Airline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch airline"})
		return
	}

	c.JSON(http.StatusOK, airline)
}

// CreateAirline creates a new airline
// POST /airlines
func (h *AirlineHandler) CreateAirline(c *gin.Context) {
	var req models.CreateAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if airline already exists
	_, err := h.airlineRepo.GetByCode(req.AirlineCode)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airline already exists"})
		return
	}
	if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing airline"})
		return
	}

	airline := req.ToAirline()
	if err := h.airlineRepo.Create(airline); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create airline"})
		return
	}

	c.JSON(http.StatusCreated, airline)
}

// InitAirlines seeds the default airline catalog, skipping existing codes
// POST /airlines/init
func (h *AirlineHandler) InitAirlines(c *gin.Context) {
	created, err := h.airlineRepo.SeedDefaults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize airlines"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
