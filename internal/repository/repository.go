package repository

import (
	"context"

	"fourtyfit/workout-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// EquipmentRepository defines the interface for interacting with equipment documents.
type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, equipment *domain.Equipment) (primitive.ObjectID, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise documents.
type ExerciseRepository interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MuscleGroupRepository defines the interface for interacting with muscle group documents.
// DeleteAll and CreateMany exist for the destructive reset/bulk-load operation.
type MuscleGroupRepository interface {
	List(ctx context.Context) ([]domain.MuscleGroup, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, group *domain.MuscleGroup) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, groups []domain.MuscleGroup) error
	Update(ctx context.Context, group *domain.MuscleGroup) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// WorkoutRepository defines the interface for interacting with workout documents.
type WorkoutRepository interface {
	List(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
