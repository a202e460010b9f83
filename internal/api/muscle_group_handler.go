package api

import (
	"errors"
	"net/http"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MuscleGroupHandler holds the muscle group service dependency.
type MuscleGroupHandler struct {
	muscleGroupService service.MuscleGroupService
}

// NewMuscleGroupHandler creates a new MuscleGroupHandler.
func NewMuscleGroupHandler(muscleGroupService service.MuscleGroupService) *MuscleGroupHandler {
	return &MuscleGroupHandler{muscleGroupService: muscleGroupService}
}

// --- DTOs ---

// AddMuscleGroupRequest defines the expected JSON for creating a muscle group.
type AddMuscleGroupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Muscles  []domain.Muscle `json:"muscles" binding:"required"`
	ImageURL string          `json:"imageUrl"`
}

// UpdateMuscleGroupRequest defines the expected JSON for updating a muscle group.
type UpdateMuscleGroupRequest struct {
	ID       string          `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Muscles  []domain.Muscle `json:"muscles" binding:"required"`
	ImageURL string          `json:"imageUrl" binding:"required"`
}

// RemoveMuscleGroupRequest defines the expected JSON for deleting a muscle group.
type RemoveMuscleGroupRequest struct {
	ID string `json:"id" binding:"required"`
}

// --- Handler Methods ---

// AddMuscleGroup handles POST /addMuscleGroup.
func (h *MuscleGroupHandler) AddMuscleGroup(c *gin.Context) {
	var req AddMuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	group, err := h.muscleGroupService.CreateMuscleGroup(c.Request.Context(), req.Name, req.Muscles, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": group.ID.Hex()})
}

// UpdateMuscleGroup handles POST /updateMuscleGroup.
func (h *MuscleGroupHandler) UpdateMuscleGroup(c *gin.Context) {
	var req UpdateMuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID")
		return
	}

	_, err := h.muscleGroupService.UpdateMuscleGroup(c.Request.Context(), id, req.Name, req.Muscles, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMuscleGroupNotFound):
			abortWithError(c, http.StatusNotFound, "Muscle group not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Muscle group updated successfully"})
}

// RemoveMuscleGroup handles POST /removeMuscleGroup.
func (h *MuscleGroupHandler) RemoveMuscleGroup(c *gin.Context) {
	var req RemoveMuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing muscle group ID")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID")
		return
	}

	if err := h.muscleGroupService.DeleteMuscleGroup(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMuscleGroupNotFound) {
			abortWithError(c, http.StatusNotFound, "Muscle group not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetMuscleGroups handles POST /resetMuscleGroups: wipes every muscle
// group document (and muscle images) and reloads the bundled canonical
// dataset. No confirmation at this layer; that is a client concern.
func (h *MuscleGroupHandler) ResetMuscleGroups(c *gin.Context) {
	count, err := h.muscleGroupService.Reset(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Muscle groups reset and uploaded successfully",
		"count":   count,
	})
}

// UploadMuscleGroups handles POST /uploadMuscleGroups: batch-creates groups
// from a name-to-muscles mapping.
func (h *MuscleGroupHandler) UploadMuscleGroups(c *gin.Context) {
	var req map[string][]domain.Muscle
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.muscleGroupService.BulkUpload(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to upload muscle groups")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Muscle groups uploaded successfully"})
}

// ListMuscleGroups handles GET /muscleGroups.
func (h *MuscleGroupHandler) ListMuscleGroups(c *gin.Context) {
	groups, err := h.muscleGroupService.ListMuscleGroups(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve muscle groups.")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetMuscleGroup handles GET /muscleGroups/:id.
func (h *MuscleGroupHandler) GetMuscleGroup(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID")
		return
	}

	group, err := h.muscleGroupService.GetMuscleGroupByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMuscleGroupNotFound) {
			abortWithError(c, http.StatusNotFound, "Muscle group not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve muscle group.")
		}
		return
	}
	c.JSON(http.StatusOK, group)
}

// MuscleGroupExists handles GET /muscleGroups/exists?name=...
func (h *MuscleGroupHandler) MuscleGroupExists(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "Missing name parameter")
		return
	}

	exists, err := h.muscleGroupService.MuscleGroupNameExists(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to check muscle group name.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
