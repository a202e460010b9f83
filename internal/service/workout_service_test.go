package service

import (
	"context"
	"testing"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/servicetest"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newWorkoutService(t *testing.T) (WorkoutService, *servicetest.WorkoutRepo, *servicetest.ExerciseRepo, *servicetest.Storage) {
	t.Helper()
	workoutRepo := servicetest.NewWorkoutRepo()
	exerciseRepo := servicetest.NewExerciseRepo()
	store := servicetest.NewStorage()
	return NewWorkoutService(workoutRepo, exerciseRepo, store), workoutRepo, exerciseRepo, store
}

func sampleWorkout(name string) *domain.Workout {
	return &domain.Workout{
		Name:     name,
		ImageURL: "https://x/workouts/w.png",
		ExerciseGroups: []domain.ExerciseGroup{
			{Sets: 3, Exercises: []domain.WorkoutExercise{
				{ExerciseID: "e1", Reps: 10, Weight: 20},
			}},
		},
	}
}

func TestWorkoutService_CreateRoundTripsGroups(t *testing.T) {
	svc, _, _, _ := newWorkoutService(t)
	ctx := context.Background()

	groups := []domain.ExerciseGroup{
		{Sets: 3, Exercises: []domain.WorkoutExercise{
			{ExerciseID: "e1", Reps: 10, Weight: 20},
		}},
		{Sets: 5, Exercises: []domain.WorkoutExercise{
			{ExerciseID: "e2", Reps: 5, Weight: 80},
			{ExerciseID: "e3", Reps: 8, Weight: 0},
		}},
	}
	created, err := svc.CreateWorkout(ctx, &domain.Workout{
		Name:           "Push Day",
		ImageURL:       "https://x/workouts/push.png",
		ExerciseGroups: groups,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := svc.GetWorkoutByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, groups, got.ExerciseGroups)
}

func TestWorkoutService_CreateRejectsInvalid(t *testing.T) {
	svc, repo, _, _ := newWorkoutService(t)
	ctx := context.Background()

	w := sampleWorkout("A")
	w.Name = ""
	_, err := svc.CreateWorkout(ctx, w)
	require.ErrorIs(t, err, ErrValidationFailed)

	w = sampleWorkout("B")
	w.ExerciseGroups = nil
	_, err = svc.CreateWorkout(ctx, w)
	require.ErrorIs(t, err, ErrNoGroups)

	w = sampleWorkout("C")
	w.ExerciseGroups = append(w.ExerciseGroups, domain.ExerciseGroup{Sets: 3})
	_, err = svc.CreateWorkout(ctx, w)
	require.ErrorIs(t, err, ErrEmptyGroup)

	// None of the rejected submissions reached the write path.
	require.Zero(t, repo.CreateCalls)
}

func TestWorkoutService_CreateRejectsTakenName(t *testing.T) {
	svc, _, _, _ := newWorkoutService(t)
	ctx := context.Background()

	_, err := svc.CreateWorkout(ctx, sampleWorkout("Leg Day"))
	require.NoError(t, err)

	_, err = svc.CreateWorkout(ctx, sampleWorkout("Leg Day"))
	require.ErrorIs(t, err, ErrWorkoutNameTaken)
}

func TestWorkoutService_UpdateKeepsOwnName(t *testing.T) {
	svc, _, _, _ := newWorkoutService(t)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, sampleWorkout("Pull Day"))
	require.NoError(t, err)

	// Saving under its own name is not a conflict.
	created.ExerciseGroups[0].Sets = 4
	updated, err := svc.UpdateWorkout(ctx, created)
	require.NoError(t, err)
	require.Equal(t, 4, updated.ExerciseGroups[0].Sets)

	// Renaming onto another workout's name is.
	_, err = svc.CreateWorkout(ctx, sampleWorkout("Other"))
	require.NoError(t, err)
	created.Name = "Other"
	_, err = svc.UpdateWorkout(ctx, created)
	require.ErrorIs(t, err, ErrWorkoutNameTaken)
}

func TestWorkoutService_DerivedFields(t *testing.T) {
	svc, _, exerciseRepo, _ := newWorkoutService(t)
	ctx := context.Background()

	benchID, err := exerciseRepo.Create(ctx, &domain.Exercise{
		Name:           "Bench Press",
		Description:    "barbell press",
		ImageURL:       "https://x/bench.png",
		EquipmentIDs:   []string{"eq-barbell", "eq-bench"},
		MuscleGroupIDs: []string{"mg-chest"},
	})
	require.NoError(t, err)
	rowID, err := exerciseRepo.Create(ctx, &domain.Exercise{
		Name:           "Barbell Row",
		Description:    "bent over row",
		ImageURL:       "https://x/row.png",
		EquipmentIDs:   []string{"eq-barbell"},
		MuscleGroupIDs: []string{"mg-back"},
	})
	require.NoError(t, err)

	created, err := svc.CreateWorkout(ctx, &domain.Workout{
		Name:     "Upper",
		ImageURL: "https://x/workouts/upper.png",
		ExerciseGroups: []domain.ExerciseGroup{
			{Sets: 3, Exercises: []domain.WorkoutExercise{
				{ExerciseID: benchID.Hex(), Reps: 8, Weight: 60},
				{ExerciseID: rowID.Hex(), Reps: 8, Weight: 50},
				{ExerciseID: "dangling-id", Reps: 10, Weight: 0},
			}},
		},
	})
	require.NoError(t, err)

	// Union of equipment/muscle groups across referenced exercises; the
	// dangling reference contributes nothing.
	require.Equal(t, []string{"eq-barbell", "eq-bench"}, created.Equipment)
	require.Equal(t, []string{"mg-back", "mg-chest"}, created.MuscleGroups)

	all, err := svc.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, []string{"eq-barbell", "eq-bench"}, all[0].Equipment)
}

func TestWorkoutService_DeleteRemovesImage(t *testing.T) {
	svc, _, _, store := newWorkoutService(t)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, sampleWorkout("To Delete"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(ctx, created.ID))
	require.True(t, store.HasDeleted("workouts/w.png"))

	_, err = svc.GetWorkoutByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutService_DeleteNotFound(t *testing.T) {
	svc, _, _, _ := newWorkoutService(t)
	err := svc.DeleteWorkout(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}
