package service

import (
	"context"
	"errors"

	"fourtyfit/workout-app/internal/dataset"
	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/repository"
	"fourtyfit/workout-app/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
)

// --- Service Interface ---
type MuscleGroupService interface {
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
	GetMuscleGroupByID(ctx context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error)
	MuscleGroupNameExists(ctx context.Context, name string) (bool, error)
	CreateMuscleGroup(ctx context.Context, name string, muscles []domain.Muscle, imageURL string) (*domain.MuscleGroup, error)
	UpdateMuscleGroup(ctx context.Context, id primitive.ObjectID, name string, muscles []domain.Muscle, imageURL string) (*domain.MuscleGroup, error)
	DeleteMuscleGroup(ctx context.Context, id primitive.ObjectID) error
	BulkUpload(ctx context.Context, groups map[string][]domain.Muscle) error
	Reset(ctx context.Context) (int, error)
}

// --- Service Implementation ---

// muscleGroupService implements the MuscleGroupService interface.
type muscleGroupService struct {
	muscleGroupRepo repository.MuscleGroupRepository
	fileStorage     storage.FileStorage
}

// NewMuscleGroupService creates a new instance of muscleGroupService.
func NewMuscleGroupService(muscleGroupRepo repository.MuscleGroupRepository, fileStorage storage.FileStorage) MuscleGroupService {
	return &muscleGroupService{
		muscleGroupRepo: muscleGroupRepo,
		fileStorage:     fileStorage,
	}
}

// ListMuscleGroups retrieves all muscle groups.
func (s *muscleGroupService) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.muscleGroupRepo.List(ctx)
}

// GetMuscleGroupByID retrieves a single muscle group.
func (s *muscleGroupService) GetMuscleGroupByID(ctx context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error) {
	group, err := s.muscleGroupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMuscleGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// MuscleGroupNameExists reports whether a group with exactly this name exists.
func (s *muscleGroupService) MuscleGroupNameExists(ctx context.Context, name string) (bool, error) {
	return s.muscleGroupRepo.ExistsByName(ctx, name)
}

// CreateMuscleGroup handles the creation of a new muscle group.
func (s *muscleGroupService) CreateMuscleGroup(ctx context.Context, name string, muscles []domain.Muscle, imageURL string) (*domain.MuscleGroup, error) {
	if name == "" || muscles == nil {
		return nil, ErrValidationFailed
	}

	group := &domain.MuscleGroup{
		Name:     name,
		Muscles:  muscles,
		ImageURL: imageURL,
	}

	groupID, err := s.muscleGroupRepo.Create(ctx, group)
	if err != nil {
		return nil, err
	}
	return s.muscleGroupRepo.GetByID(ctx, groupID)
}

// UpdateMuscleGroup replaces a muscle group wholesale. Before the document
// write it diffs old against new state and best-effort-deletes storage
// objects that the update orphans: the old group image when it changed, and
// the image of every old muscle whose (name, imageUrl) pair no longer
// appears in the new muscle list.
func (s *muscleGroupService) UpdateMuscleGroup(ctx context.Context, id primitive.ObjectID, name string, muscles []domain.Muscle, imageURL string) (*domain.MuscleGroup, error) {
	if name == "" || muscles == nil || imageURL == "" {
		return nil, ErrValidationFailed
	}
	if id == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}

	existing, err := s.muscleGroupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMuscleGroupNotFound
		}
		return nil, err
	}

	if existing.ImageURL != imageURL {
		s.deleteImage(ctx, existing.ImageURL)
	}

	updated := domain.MuscleGroup{Muscles: muscles}
	for _, oldMuscle := range existing.Muscles {
		if !updated.HasMuscle(oldMuscle.Name, oldMuscle.ImageURL) {
			s.deleteImage(ctx, oldMuscle.ImageURL)
		}
	}

	existing.Name = name
	existing.Muscles = muscles
	existing.ImageURL = imageURL

	if err := s.muscleGroupRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMuscleGroupNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteMuscleGroup removes a muscle group together with its group image and
// the image of every embedded muscle. All storage deletes are best-effort.
func (s *muscleGroupService) DeleteMuscleGroup(ctx context.Context, id primitive.ObjectID) error {
	group, err := s.muscleGroupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMuscleGroupNotFound
		}
		return err
	}

	s.deleteImage(ctx, group.ImageURL)
	for _, muscle := range group.Muscles {
		s.deleteImage(ctx, muscle.ImageURL)
	}

	if err := s.muscleGroupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMuscleGroupNotFound
		}
		return err
	}
	return nil
}

// BulkUpload batch-creates muscle groups from a name-to-muscles mapping.
func (s *muscleGroupService) BulkUpload(ctx context.Context, groups map[string][]domain.Muscle) error {
	if len(groups) == 0 {
		return ErrValidationFailed
	}

	docs := make([]domain.MuscleGroup, 0, len(groups))
	for name, muscles := range groups {
		if name == "" {
			return ErrValidationFailed
		}
		docs = append(docs, domain.MuscleGroup{
			Name:    name,
			Muscles: muscles,
		})
	}
	return s.muscleGroupRepo.CreateMany(ctx, docs)
}

// Reset wipes every muscle group and reloads the bundled canonical dataset.
// Destructive and irreversible; any confirmation happens in the client. Per
// group, every embedded muscle image is best-effort-deleted from storage
// before the documents go. Returns the number of groups created.
func (s *muscleGroupService) Reset(ctx context.Context) (int, error) {
	existing, err := s.muscleGroupRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	for _, group := range existing {
		for _, muscle := range group.Muscles {
			s.deleteImage(ctx, muscle.ImageURL)
		}
	}

	if err := s.muscleGroupRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	logrus.Infof("deleted %d existing muscle groups", len(existing))

	canonical, err := dataset.CanonicalMuscleGroups()
	if err != nil {
		return 0, err
	}
	if err := s.muscleGroupRepo.CreateMany(ctx, canonical); err != nil {
		return 0, err
	}
	logrus.Infof("loaded %d canonical muscle groups", len(canonical))

	return len(canonical), nil
}

func (s *muscleGroupService) deleteImage(ctx context.Context, imageURL string) {
	objectKey := storage.ObjectKeyFromURL(MuscleGroupImageCategory, imageURL)
	if objectKey == "" {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		logrus.WithError(err).Warnf("failed to delete muscle group image %q, continuing", objectKey)
	}
}
