package api

import (
	"errors"
	"net/http"

	"fourtyfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// AddExerciseRequest defines the expected JSON for creating an exercise.
// EquipmentIDs and MuscleGroupIDs hold hex document ids; they are stored
// verbatim, dangling or not.
type AddExerciseRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	ImageURL       string   `json:"imageUrl" binding:"required"`
	EquipmentIDs   []string `json:"equipmentIds" binding:"required"`
	MuscleGroupIDs []string `json:"muscleGroupIds"`
}

// UpdateExerciseRequest defines the expected JSON for updating an exercise.
type UpdateExerciseRequest struct {
	ID             string   `json:"id" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	ImageURL       string   `json:"imageUrl" binding:"required"`
	EquipmentIDs   []string `json:"equipmentIds" binding:"required"`
	MuscleGroupIDs []string `json:"muscleGroupIds"`
}

// RemoveExerciseRequest defines the expected JSON for deleting an exercise.
type RemoveExerciseRequest struct {
	ID string `json:"id" binding:"required"`
}

// --- Handler Methods ---

// AddExercise handles POST /addExercise.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	exercise, err := h.exerciseService.CreateExercise(
		c.Request.Context(),
		req.Name,
		req.Description,
		req.ImageURL,
		req.EquipmentIDs,
		req.MuscleGroupIDs,
	)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": exercise.ID.Hex()})
}

// UpdateExercise handles POST /updateExercise.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	_, err := h.exerciseService.UpdateExercise(
		c.Request.Context(),
		id,
		req.Name,
		req.Description,
		req.ImageURL,
		req.EquipmentIDs,
		req.MuscleGroupIDs,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveExercise handles POST /removeExercise.
func (h *ExerciseHandler) RemoveExercise(c *gin.Context) {
	var req RemoveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing exercise ID")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, service.ErrInvalidExerciseData):
			abortWithError(c, http.StatusBadRequest, "Invalid exercise data")
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListExercises handles GET /exercises.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// ExerciseExists handles GET /exercises/exists?name=...
func (h *ExerciseHandler) ExerciseExists(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "Missing name parameter")
		return
	}

	exists, err := h.exerciseService.ExerciseNameExists(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to check exercise name.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
