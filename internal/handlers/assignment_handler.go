package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/models"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentRepo *database.AssignmentRepository
	flightRepo     *database.FlightRepository
	carouselRepo   *database.CarouselRepository
}

func NewAssignmentHandler(
	assignmentRepo *database.AssignmentRepository,
	flightRepo *database.FlightRepository,
	carouselRepo *database.CarouselRepository,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentRepo: assignmentRepo,
		flightRepo:     flightRepo,
		carouselRepo:   carouselRepo,
	}
}

// checkCarouselAssignable verifies that the carousel exists and is active.
// Sends the error response and returns false when it is not assignable.
func (h *AssignmentHandler) checkCarouselAssignable(c *gin.Context, carouselID string) bool {
	carousel, err := h.carouselRepo.GetByID(carouselID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Carousel not found"})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check carousel"})
		return false
	}

	if !carousel.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carousel is not active"})
		return false
	}

	return true
}

// GetAssignments retrieves all assignments, optionally filtered by date
// GET /assignments?date=YYYY-MM-DD
func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	day, ok := parseDateFilter(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentRepo.List(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetAssignmentByID retrieves a specific assignment with flight and carousel info
// GET /assignments/:id
func (h *AssignmentHandler) GetAssignmentByID(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignment"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CreateAssignment creates a new assignment
// POST /assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req models.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if flight exists
	exists, err := h.flightRepo.Exists(req.FlightID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check flight"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Flight not found"})
		return
	}

	// Check if carousel exists and is active
	if !h.checkCarouselAssignable(c, req.CarouselID) {
		return
	}

	assignment := req.ToAssignment()
	if err := h.assignmentRepo.Create(assignment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment applies a partial update to an assignment (manual adjustments)
// PUT /assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req models.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Not-found before referential checks
	if _, err := h.assignmentRepo.GetByID(assignmentID); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignment"})
		return
	}

	// If the carousel is being changed, verify it exists and is active
	if req.CarouselID != nil {
		if !h.checkCarouselAssignable(c, *req.CarouselID) {
			return
		}
	}

	if err := h.assignmentRepo.Update(assignmentID, &req); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
		return
	}

	assignment, err := h.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated assignment"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment deletes an assignment
// DELETE /assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	if err := h.assignmentRepo.Delete(assignmentID); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment"})
		return
	}

	c.Status(http.StatusNoContent)
}
