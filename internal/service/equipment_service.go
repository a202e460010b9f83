package service

import (
	"context"
	"errors"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/repository"
	"fourtyfit/workout-app/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage path categories, one per entity type. Image object keys are
// "<category>/<filename>".
const (
	EquipmentImageCategory   = "equipment"
	ExerciseImageCategory    = "exercises"
	MuscleGroupImageCategory = "muscleGroups"
	WorkoutImageCategory     = "workouts"
)

// --- Error Definitions ---
var (
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrInvalidEquipmentData = errors.New("invalid equipment data")
	ErrValidationFailed     = errors.New("validation failed")
)

// --- Service Interface ---
type EquipmentService interface {
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error)
	EquipmentNameExists(ctx context.Context, name string) (bool, error)
	CreateEquipment(ctx context.Context, name, description, imageURL string) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id primitive.ObjectID, name, description, imageURL string) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

// equipmentService implements the EquipmentService interface.
type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	fileStorage   storage.FileStorage
}

// NewEquipmentService creates a new instance of equipmentService.
func NewEquipmentService(equipmentRepo repository.EquipmentRepository, fileStorage storage.FileStorage) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		fileStorage:   fileStorage,
	}
}

// ListEquipment retrieves the full equipment catalog.
func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

// GetEquipmentByID retrieves a single piece of equipment.
func (s *equipmentService) GetEquipmentByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return equipment, nil
}

// EquipmentNameExists reports whether equipment with exactly this name exists.
func (s *equipmentService) EquipmentNameExists(ctx context.Context, name string) (bool, error) {
	return s.equipmentRepo.ExistsByName(ctx, name)
}

// CreateEquipment handles the creation of a new piece of equipment.
func (s *equipmentService) CreateEquipment(ctx context.Context, name, description, imageURL string) (*domain.Equipment, error) {
	if name == "" || description == "" || imageURL == "" {
		return nil, ErrValidationFailed
	}

	equipment := &domain.Equipment{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}

	equipmentID, err := s.equipmentRepo.Create(ctx, equipment)
	if err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetByID(ctx, equipmentID)
}

// UpdateEquipment replaces an existing equipment document wholesale.
// When the image URL changed, the previously stored image object is deleted
// best-effort: a storage failure is logged and never blocks the update.
func (s *equipmentService) UpdateEquipment(ctx context.Context, id primitive.ObjectID, name, description, imageURL string) (*domain.Equipment, error) {
	if name == "" || description == "" || imageURL == "" {
		return nil, ErrValidationFailed
	}
	if id == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}

	existing, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	if existing.ImageURL != imageURL {
		s.deleteImage(ctx, existing.ImageURL)
	}

	existing.Name = name
	existing.Description = description
	existing.ImageURL = imageURL

	if err := s.equipmentRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteEquipment removes equipment and its stored image. The image delete is
// best-effort and precedes the document delete; a crash in between leaves a
// document referencing a missing image, which is accepted. Workouts and
// exercises referencing the equipment keep their now-dangling ids.
func (s *equipmentService) DeleteEquipment(ctx context.Context, id primitive.ObjectID) error {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}

	if equipment.ImageURL == "" {
		return ErrInvalidEquipmentData
	}

	s.deleteImage(ctx, equipment.ImageURL)

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}

func (s *equipmentService) deleteImage(ctx context.Context, imageURL string) {
	objectKey := storage.ObjectKeyFromURL(EquipmentImageCategory, imageURL)
	if objectKey == "" {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		logrus.WithError(err).Warnf("failed to delete equipment image %q, continuing", objectKey)
	}
}
