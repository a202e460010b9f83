package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"fourtyfit/workout-app/internal/service"
	"fourtyfit/workout-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// UploadHandler exposes the image upload helper: a multipart endpoint that
// stores a binary blob under a category-keyed path and returns its public URL.
type UploadHandler struct {
	fileStorage storage.FileStorage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(fileStorage storage.FileStorage) *UploadHandler {
	return &UploadHandler{fileStorage: fileStorage}
}

var validCategories = map[string]struct{}{
	service.EquipmentImageCategory:   {},
	service.ExerciseImageCategory:    {},
	service.MuscleGroupImageCategory: {},
	service.WorkoutImageCategory:     {},
}

// UploadImage handles POST /uploadImage (multipart form: category + image).
// The object key is the category plus a timestamp-derived filename, matching
// the paths the cascade-delete logic later derives from stored image URLs.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	category := c.PostForm("category")
	if _, ok := validCategories[category]; !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing category")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read image file")
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".png"
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	objectKey := fmt.Sprintf("%s/%d%s", category, time.Now().UnixMilli(), ext)

	url, err := h.fileStorage.Upload(c.Request.Context(), objectKey, contentType, file)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
