package api

import (
	"errors"
	"net/http"

	"fourtyfit/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler holds the equipment service dependency.
type EquipmentHandler struct {
	equipmentService service.EquipmentService
}

// NewEquipmentHandler creates a new EquipmentHandler.
func NewEquipmentHandler(equipmentService service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

// --- DTOs ---

// AddEquipmentRequest defines the expected JSON for creating equipment.
type AddEquipmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

// UpdateEquipmentRequest defines the expected JSON for updating equipment.
type UpdateEquipmentRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

// RemoveEquipmentRequest defines the expected JSON for deleting equipment.
type RemoveEquipmentRequest struct {
	ID string `json:"id" binding:"required"`
}

// --- Handler Methods ---

// AddEquipment handles POST /addEquipment.
func (h *EquipmentHandler) AddEquipment(c *gin.Context) {
	var req AddEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	equipment, err := h.equipmentService.CreateEquipment(c.Request.Context(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": equipment.ID.Hex()})
}

// UpdateEquipment handles POST /updateEquipment.
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	_, err := h.equipmentService.UpdateEquipment(c.Request.Context(), id, req.Name, req.Description, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEquipmentNotFound):
			abortWithError(c, http.StatusNotFound, "Equipment not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Missing required fields")
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveEquipment handles POST /removeEquipment.
func (h *EquipmentHandler) RemoveEquipment(c *gin.Context) {
	var req RemoveEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing equipment ID")
		return
	}

	id, ok := parseID(req.ID)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrEquipmentNotFound):
			abortWithError(c, http.StatusNotFound, "Equipment not found")
		case errors.Is(err, service.ErrInvalidEquipmentData):
			abortWithError(c, http.StatusBadRequest, "Invalid equipment data")
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListEquipment handles GET /equipment.
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	equipment, err := h.equipmentService.ListEquipment(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve equipment.")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// GetEquipment handles GET /equipment/:id.
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	equipment, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			abortWithError(c, http.StatusNotFound, "Equipment not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve equipment.")
		}
		return
	}
	c.JSON(http.StatusOK, equipment)
}

// EquipmentExists handles GET /equipment/exists?name=...
func (h *EquipmentHandler) EquipmentExists(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "Missing name parameter")
		return
	}

	exists, err := h.equipmentService.EquipmentNameExists(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to check equipment name.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
