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

// --- Error Definitions ---
var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrInvalidExerciseData = errors.New("invalid exercise data")
)

// --- Service Interface ---
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ExerciseNameExists(ctx context.Context, name string) (bool, error)
	CreateExercise(ctx context.Context, name, description, imageURL string, equipmentIDs, muscleGroupIDs []string) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id primitive.ObjectID, name, description, imageURL string, equipmentIDs, muscleGroupIDs []string) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// ListExercises retrieves the full exercise catalog.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ExerciseNameExists reports whether an exercise with exactly this name exists.
func (s *exerciseService) ExerciseNameExists(ctx context.Context, name string) (bool, error) {
	return s.exerciseRepo.ExistsByName(ctx, name)
}

// CreateExercise handles the creation of a new exercise. EquipmentIDs and
// muscleGroupIDs are stored as given; referential integrity is not enforced.
func (s *exerciseService) CreateExercise(ctx context.Context, name, description, imageURL string, equipmentIDs, muscleGroupIDs []string) (*domain.Exercise, error) {
	if name == "" || description == "" || imageURL == "" || equipmentIDs == nil {
		return nil, ErrValidationFailed
	}
	if muscleGroupIDs == nil {
		muscleGroupIDs = []string{}
	}

	exercise := &domain.Exercise{
		Name:           name,
		Description:    description,
		ImageURL:       imageURL,
		EquipmentIDs:   equipmentIDs,
		MuscleGroupIDs: muscleGroupIDs,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// UpdateExercise replaces an existing exercise wholesale. When the image URL
// changed, the replaced image object is deleted best-effort before the
// document write.
func (s *exerciseService) UpdateExercise(ctx context.Context, id primitive.ObjectID, name, description, imageURL string, equipmentIDs, muscleGroupIDs []string) (*domain.Exercise, error) {
	if name == "" || description == "" || imageURL == "" || equipmentIDs == nil {
		return nil, ErrValidationFailed
	}
	if id == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	if muscleGroupIDs == nil {
		muscleGroupIDs = []string{}
	}

	existing, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if existing.ImageURL != imageURL {
		s.deleteImage(ctx, existing.ImageURL)
	}

	existing.Name = name
	existing.Description = description
	existing.ImageURL = imageURL
	existing.EquipmentIDs = equipmentIDs
	existing.MuscleGroupIDs = muscleGroupIDs

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteExercise removes an exercise and its stored image. Workouts keep any
// dangling references to the deleted exercise; clients render those as
// "Unknown".
func (s *exerciseService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if exercise.ImageURL == "" {
		return ErrInvalidExerciseData
	}

	s.deleteImage(ctx, exercise.ImageURL)

	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

func (s *exerciseService) deleteImage(ctx context.Context, imageURL string) {
	objectKey := storage.ObjectKeyFromURL(ExerciseImageCategory, imageURL)
	if objectKey == "" {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		logrus.WithError(err).Warnf("failed to delete exercise image %q, continuing", objectKey)
	}
}
