// Package servicetest provides in-memory fakes for the repository and
// storage interfaces, so that service and handler tests run without MongoDB
// or S3.
package servicetest

import (
	"context"
	"errors"
	"io"
	"sync"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage is an in-memory storage.FileStorage. It records every upload and
// delete; FailDeletes makes DeleteObject return an error while still
// recording the attempt, to exercise the best-effort cascade paths.
type Storage struct {
	mu          sync.Mutex
	Objects     map[string][]byte
	Deleted     []string
	FailDeletes bool
}

func NewStorage() *Storage {
	return &Storage{Objects: map[string][]byte{}}
}

func (s *Storage) Upload(_ context.Context, objectKey string, _ string, body io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.Objects[objectKey] = data
	return "https://storage.test/" + objectKey, nil
}

func (s *Storage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, objectKey)
	if s.FailDeletes {
		return errors.New("storage unavailable")
	}
	delete(s.Objects, objectKey)
	return nil
}

// HasDeleted reports whether a delete was attempted for the given key.
func (s *Storage) HasDeleted(objectKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.Deleted {
		if k == objectKey {
			return true
		}
	}
	return false
}

// EquipmentRepo is an in-memory repository.EquipmentRepository.
type EquipmentRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]domain.Equipment
	order []primitive.ObjectID
}

func NewEquipmentRepo() *EquipmentRepo {
	return &EquipmentRepo{items: map[primitive.ObjectID]domain.Equipment{}}
}

func (r *EquipmentRepo) List(context.Context) ([]domain.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Equipment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *EquipmentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *EquipmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *EquipmentRepo) Create(_ context.Context, equipment *domain.Equipment) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	equipment.ID = primitive.NewObjectID()
	r.items[equipment.ID] = *equipment
	r.order = append(r.order, equipment.ID)
	return equipment.ID, nil
}

func (r *EquipmentRepo) Update(_ context.Context, equipment *domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[equipment.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[equipment.ID] = *equipment
	return nil
}

func (r *EquipmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ExerciseRepo is an in-memory repository.ExerciseRepository.
type ExerciseRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]domain.Exercise
	order []primitive.ObjectID
}

func NewExerciseRepo() *ExerciseRepo {
	return &ExerciseRepo{items: map[primitive.ObjectID]domain.Exercise{}}
}

func (r *ExerciseRepo) List(context.Context) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Exercise, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *ExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *ExerciseRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *ExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exercise.ID = primitive.NewObjectID()
	r.items[exercise.ID] = *exercise
	r.order = append(r.order, exercise.ID)
	return exercise.ID, nil
}

func (r *ExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[exercise.ID] = *exercise
	return nil
}

func (r *ExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MuscleGroupRepo is an in-memory repository.MuscleGroupRepository.
type MuscleGroupRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]domain.MuscleGroup
	order []primitive.ObjectID
}

func NewMuscleGroupRepo() *MuscleGroupRepo {
	return &MuscleGroupRepo{items: map[primitive.ObjectID]domain.MuscleGroup{}}
}

func (r *MuscleGroupRepo) List(context.Context) ([]domain.MuscleGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MuscleGroup, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MuscleGroupRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *MuscleGroupRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *MuscleGroupRepo) Create(_ context.Context, group *domain.MuscleGroup) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	group.ID = primitive.NewObjectID()
	r.items[group.ID] = *group
	r.order = append(r.order, group.ID)
	return group.ID, nil
}

func (r *MuscleGroupRepo) CreateMany(_ context.Context, groups []domain.MuscleGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range groups {
		groups[i].ID = primitive.NewObjectID()
		r.items[groups[i].ID] = groups[i]
		r.order = append(r.order, groups[i].ID)
	}
	return nil
}

func (r *MuscleGroupRepo) Update(_ context.Context, group *domain.MuscleGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[group.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[group.ID] = *group
	return nil
}

func (r *MuscleGroupRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MuscleGroupRepo) DeleteAll(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[primitive.ObjectID]domain.MuscleGroup{}
	r.order = nil
	return nil
}

// WorkoutRepo is an in-memory repository.WorkoutRepository. CreateCalls
// counts Create invocations so tests can assert that rejected submissions
// never reach the write path.
type WorkoutRepo struct {
	mu          sync.Mutex
	items       map[primitive.ObjectID]domain.Workout
	order       []primitive.ObjectID
	CreateCalls int
}

func NewWorkoutRepo() *WorkoutRepo {
	return &WorkoutRepo{items: map[primitive.ObjectID]domain.Workout{}}
}

func (r *WorkoutRepo) List(context.Context) ([]domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Workout, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *WorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (r *WorkoutRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *WorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CreateCalls++
	workout.ID = primitive.NewObjectID()
	r.items[workout.ID] = *workout
	r.order = append(r.order, workout.ID)
	return workout.ID, nil
}

func (r *WorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[workout.ID] = *workout
	return nil
}

func (r *WorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
