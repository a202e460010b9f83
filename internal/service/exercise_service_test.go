package service

import (
	"context"
	"testing"

	"fourtyfit/workout-app/internal/servicetest"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newExerciseService(t *testing.T) (ExerciseService, *servicetest.ExerciseRepo, *servicetest.Storage) {
	t.Helper()
	repo := servicetest.NewExerciseRepo()
	store := servicetest.NewStorage()
	return NewExerciseService(repo, store), repo, store
}

func TestExerciseService_CreateAndGet(t *testing.T) {
	svc, _, _ := newExerciseService(t)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, "Deadlift", "Hip hinge off the floor",
		"https://x/exercises/deadlift.png", []string{"eq-barbell"}, []string{"mg-back", "mg-legs"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := svc.GetExerciseByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Deadlift", got.Name)
	require.Equal(t, []string{"eq-barbell"}, got.EquipmentIDs)
	require.Equal(t, []string{"mg-back", "mg-legs"}, got.MuscleGroupIDs)
}

func TestExerciseService_CreateValidation(t *testing.T) {
	svc, _, _ := newExerciseService(t)
	ctx := context.Background()

	_, err := svc.CreateExercise(ctx, "", "desc", "https://x/e.png", []string{"eq"}, nil)
	require.ErrorIs(t, err, ErrValidationFailed)

	// Equipment references are required; muscle group references are not.
	_, err = svc.CreateExercise(ctx, "Push Up", "Bodyweight press", "https://x/pushup.png", nil, nil)
	require.ErrorIs(t, err, ErrValidationFailed)

	created, err := svc.CreateExercise(ctx, "Push Up", "Bodyweight press", "https://x/pushup.png", []string{}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{}, created.MuscleGroupIDs)
}

func TestExerciseService_UpdateDeletesReplacedImage(t *testing.T) {
	svc, _, store := newExerciseService(t)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, "Squat", "Back squat",
		"https://x/exercises/squat-old.png", []string{"eq-barbell"}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateExercise(ctx, created.ID, "Squat", "Back squat",
		"https://x/exercises/squat-new.png", []string{"eq-barbell", "eq-rack"}, []string{"mg-legs"})
	require.NoError(t, err)
	require.Equal(t, "https://x/exercises/squat-new.png", updated.ImageURL)
	require.True(t, store.HasDeleted("exercises/squat-old.png"))

	// Same URL again: nothing further to delete.
	_, err = svc.UpdateExercise(ctx, created.ID, "Squat", "Back squat",
		"https://x/exercises/squat-new.png", []string{"eq-barbell"}, nil)
	require.NoError(t, err)
	require.Len(t, store.Deleted, 1)
}

func TestExerciseService_DeleteRemovesImage(t *testing.T) {
	svc, _, store := newExerciseService(t)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, "Lunge", "Walking lunge",
		"https://x/exercises/lunge.png", []string{}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(ctx, created.ID))
	require.True(t, store.HasDeleted("exercises/lunge.png"))

	_, err = svc.GetExerciseByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseService_DeleteNotFound(t *testing.T) {
	svc, _, _ := newExerciseService(t)
	err := svc.DeleteExercise(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrExerciseNotFound)
}
