package api

import (
	"errors"
	"net/http"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// ExerciseGroupRequest mirrors domain.ExerciseGroup on the wire. Sets has no
// required binding: a zero set count is a legal stored value and must survive
// the update round trip.
type ExerciseGroupRequest struct {
	Exercises []WorkoutExerciseRequest `json:"exercises" binding:"required"`
	Sets      int                      `json:"sets"`
}

// WorkoutExerciseRequest mirrors domain.WorkoutExercise on the wire.
type WorkoutExerciseRequest struct {
	ExerciseID string  `json:"exerciseId" binding:"required"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

// AddWorkoutRequest defines the expected JSON for creating a workout.
type AddWorkoutRequest struct {
	Name           string                 `json:"name" binding:"required"`
	ImageURL       string                 `json:"imageUrl" binding:"required"`
	ExerciseGroups []ExerciseGroupRequest `json:"exerciseGroups" binding:"required"`
}

// UpdateWorkoutRequest defines the expected JSON for updating a workout.
type UpdateWorkoutRequest struct {
	ID             string                 `json:"id" binding:"required"`
	Name           string                 `json:"name" binding:"required"`
	ImageURL       string                 `json:"imageUrl" binding:"required"`
	ExerciseGroups []ExerciseGroupRequest `json:"exerciseGroups" binding:"required"`
}

// RemoveWorkoutRequest defines the expected JSON for deleting a workout.
type RemoveWorkoutRequest struct {
	ID string `json:"id" binding:"required"`
}

func mapExerciseGroups(groups []ExerciseGroupRequest) []domain.ExerciseGroup {
	out := make([]domain.ExerciseGroup, 0, len(groups))
	for _, g := range groups {
		exercises := make([]domain.WorkoutExercise, 0, len(g.Exercises))
		for _, e := range g.Exercises {
			exercises = append(exercises, domain.WorkoutExercise{
				ExerciseID: e.ExerciseID,
				Reps:       e.Reps,
				Weight:     e.Weight,
			})
		}
		out = append(out, domain.ExerciseGroup{Exercises: exercises, Sets: g.Sets})
	}
	return out
}

// --- Handler Methods ---

// AddWorkout handles POST /addWorkout.
func (h *WorkoutHandler) AddWorkout(c *gin.Context) {
	var req AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	workout := &domain.Workout{
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		ExerciseGroups: mapExerciseGroups(req.ExerciseGroups),
	}

	created, err := h.workoutService.CreateWorkout(c.Request.Context(), workout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNameTaken),
			errors.Is(err, service.ErrNoGroups),
			errors.Is(err, service.ErrEmptyGroup),
			errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": created.ID.Hex()})
}

// UpdateWorkout handles POST /updateWorkout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	workout := &domain.Workout{
		ID:             id,
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		ExerciseGroups: mapExerciseGroups(req.ExerciseGroups),
	}

	_, err := h.workoutService.UpdateWorkout(c.Request.Context(), workout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found")
		case errors.Is(err, service.ErrWorkoutNameTaken),
			errors.Is(err, service.ErrNoGroups),
			errors.Is(err, service.ErrEmptyGroup),
			errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveWorkout handles POST /removeWorkout.
func (h *WorkoutHandler) RemoveWorkout(c *gin.Context) {
	var req RemoveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing workout ID")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListWorkouts handles GET /workouts. Each workout carries its derived
// muscleGroups/equipment fields, recomputed from the exercise catalog.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout handles GET /workouts/:id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	workout, err := h.workoutService.GetWorkoutByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// WorkoutExists handles GET /workouts/exists?name=... The composer's
// debounced title check calls this.
func (h *WorkoutHandler) WorkoutExists(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "Missing name parameter")
		return
	}

	exists, err := h.workoutService.WorkoutNameExists(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to check workout name.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
