package handlers

import (
	"database/sql"
	"net/http"

	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/gin-gonic/gin"
)

type CarouselHandler struct {
	carouselRepo *database.CarouselRepository
}

func NewCarouselHandler(carouselRepo *database.CarouselRepository) *CarouselHandler {
	return &CarouselHandler{carouselRepo: carouselRepo}
}

// GetAllCarousels retrieves all carousels
// GET /carousels
func (h *CarouselHandler) GetAllCarousels(c *gin.Context) {
	carousels, err := h.carouselRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carousels"})
		return
	}

	c.JSON(http.StatusOK, carousels)
}

// GetCarouselByID retrieves a specific carousel by ID
// GET /carousels/:id
func (h *CarouselHandler) GetCarouselByID(c *gin.Context) {
	carouselID := c.Param("id")

	carousel, err := h.carouselRepo.GetByID(carouselID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Carousel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carousel"})
		return
	}

	c.JSON(http.StatusOK, carousel)
}

// CreateCarousel creates a new carousel
// POST /carousels
func (h *CarouselHandler) CreateCarousel(c *gin.Context) {
	var req models.CreateCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if carousel already exists
	_, err := h.carouselRepo.GetByID(req.CarouselID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carousel already exists"})
		return
	}
	if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing carousel"})
		return
	}

	carousel := req.ToCarousel()
	if err := h.carouselRepo.Create(carousel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create carousel"})
		return
	}

	c.JSON(http.StatusCreated, carousel)
}

// UpdateCarousel applies a partial update to a carousel
// PATCH /carousels/:id
func (h *CarouselHandler) UpdateCarousel(c *gin.Context) {
	carouselID := c.Param("id")

	var req models.UpdateCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.carouselRepo.Update(carouselID, &req); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Carousel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update carousel"})
		return
	}

	carousel, err := h.carouselRepo.GetByID(carouselID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated carousel"})
		return
	}

	c.JSON(http.StatusOK, carousel)
}

// InitCarousels seeds carousels C1-C24, skipping existing ones
// POST /carousels/init
func (h *CarouselHandler) InitCarousels(c *gin.Context) {
	created, err := h.carouselRepo.SeedDefaults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize carousels"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
