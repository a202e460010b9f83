package service

import (
	"context"
	"errors"
	"sort"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/repository"
	"fourtyfit/workout-app/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrWorkoutNameTaken = errors.New("a workout with this name already exists")
	ErrEmptyGroup       = errors.New("every exercise group needs at least one exercise")
	ErrNoGroups         = errors.New("workout needs at least one exercise group")
)

// --- Service Interface ---
type WorkoutService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkoutByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	WorkoutNameExists(ctx context.Context, name string) (bool, error)
	CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface. It depends on the
// exercise repository to recompute the derived muscleGroups/equipment fields
// on every read.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// ListWorkouts retrieves all workouts with their derived fields populated.
func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	exercisesByID, err := s.exerciseIndex(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		s.deriveFields(&workouts[i], exercisesByID)
	}
	return workouts, nil
}

// GetWorkoutByID retrieves a single workout with its derived fields populated.
func (s *workoutService) GetWorkoutByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	exercisesByID, err := s.exerciseIndex(ctx)
	if err != nil {
		return nil, err
	}
	s.deriveFields(workout, exercisesByID)
	return workout, nil
}

// WorkoutNameExists reports whether a workout with exactly this name exists.
// The result is advisory: there is no unique constraint backing it.
func (s *workoutService) WorkoutNameExists(ctx context.Context, name string) (bool, error) {
	return s.workoutRepo.ExistsByName(ctx, name)
}

// CreateWorkout validates and persists a new workout. The name-uniqueness
// check is a read-then-write with no transaction; two concurrent sessions
// picking the same name can still both succeed.
func (s *workoutService) CreateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if err := validateWorkout(workout); err != nil {
		return nil, err
	}

	taken, err := s.workoutRepo.ExistsByName(ctx, workout.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrWorkoutNameTaken
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	return s.GetWorkoutByID(ctx, workoutID)
}

// UpdateWorkout validates and persists changes to an existing workout.
// The name check only fires when the name actually changed, so saving a
// workout under its own name is not a conflict.
func (s *workoutService) UpdateWorkout(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.ID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	if err := validateWorkout(workout); err != nil {
		return nil, err
	}

	existing, err := s.workoutRepo.GetByID(ctx, workout.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if existing.Name != workout.Name {
		taken, err := s.workoutRepo.ExistsByName(ctx, workout.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrWorkoutNameTaken
		}
	}

	if existing.ImageURL != workout.ImageURL {
		s.deleteImage(ctx, existing.ImageURL)
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.GetWorkoutByID(ctx, workout.ID)
}

// DeleteWorkout removes a workout and best-effort-deletes its image.
func (s *workoutService) DeleteWorkout(ctx context.Context, id primitive.ObjectID) error {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	s.deleteImage(ctx, workout.ImageURL)

	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// validateWorkout enforces the composition invariants: a non-empty name,
// at least one exercise group, and at least one exercise in every group.
func validateWorkout(workout *domain.Workout) error {
	if workout == nil || workout.Name == "" {
		return ErrValidationFailed
	}
	if len(workout.ExerciseGroups) == 0 {
		return ErrNoGroups
	}
	for _, group := range workout.ExerciseGroups {
		if len(group.Exercises) == 0 {
			return ErrEmptyGroup
		}
	}
	return nil
}

// exerciseIndex loads the full exercise catalog keyed by hex id. Workout
// reads pay this cost so that the derived fields never go stale; the
// alternative (persisting them) was rejected because nothing would keep them
// in sync with exercise edits.
func (s *workoutService) exerciseIndex(ctx context.Context) (map[string]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		index[ex.ID.Hex()] = ex
	}
	return index, nil
}

// deriveFields recomputes the workout's muscleGroups/equipment unions from
// the exercises it references. Dangling exercise ids contribute nothing.
func (s *workoutService) deriveFields(workout *domain.Workout, exercisesByID map[string]domain.Exercise) {
	muscleGroups := make(map[string]struct{})
	equipment := make(map[string]struct{})

	for _, exerciseID := range workout.ExerciseIDs() {
		ex, ok := exercisesByID[exerciseID]
		if !ok {
			continue
		}
		for _, id := range ex.MuscleGroupIDs {
			muscleGroups[id] = struct{}{}
		}
		for _, id := range ex.EquipmentIDs {
			equipment[id] = struct{}{}
		}
	}

	workout.MuscleGroups = sortedKeys(muscleGroups)
	workout.Equipment = sortedKeys(equipment)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *workoutService) deleteImage(ctx context.Context, imageURL string) {
	objectKey := storage.ObjectKeyFromURL(WorkoutImageCategory, imageURL)
	if objectKey == "" {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		logrus.WithError(err).Warnf("failed to delete workout image %q, continuing", objectKey)
	}
}
