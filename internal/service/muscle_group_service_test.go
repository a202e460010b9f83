package service

import (
	"context"
	"testing"

	"fourtyfit/workout-app/internal/dataset"
	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/servicetest"

	"github.com/stretchr/testify/require"
)

func newMuscleGroupService(t *testing.T) (MuscleGroupService, *servicetest.MuscleGroupRepo, *servicetest.Storage) {
	t.Helper()
	repo := servicetest.NewMuscleGroupRepo()
	store := servicetest.NewStorage()
	return NewMuscleGroupService(repo, store), repo, store
}

func TestMuscleGroupService_CreateAndGet(t *testing.T) {
	svc, _, _ := newMuscleGroupService(t)
	ctx := context.Background()

	muscles := []domain.Muscle{
		{Name: "Pectoralis Major", ImageURL: "https://x/muscleGroups/pec.png"},
	}
	created, err := svc.CreateMuscleGroup(ctx, "Chest", muscles, "https://x/muscleGroups/chest.png")
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := svc.GetMuscleGroupByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Chest", got.Name)
	require.Equal(t, muscles, got.Muscles)
}

func TestMuscleGroupService_UpdateDiffsMuscleImages(t *testing.T) {
	svc, _, store := newMuscleGroupService(t)
	ctx := context.Background()

	created, err := svc.CreateMuscleGroup(ctx, "Back", []domain.Muscle{
		{Name: "Lats", ImageURL: "https://x/muscleGroups/lats.png"},
		{Name: "Traps", ImageURL: "https://x/muscleGroups/traps-old.png"},
		{Name: "Erectors", ImageURL: "https://x/muscleGroups/erectors.png"},
	}, "https://x/muscleGroups/back.png")
	require.NoError(t, err)

	// Lats kept as-is, Traps gets a new image, Erectors removed entirely.
	updated := []domain.Muscle{
		{Name: "Lats", ImageURL: "https://x/muscleGroups/lats.png"},
		{Name: "Traps", ImageURL: "https://x/muscleGroups/traps-new.png"},
	}
	_, err = svc.UpdateMuscleGroup(ctx, created.ID, "Back", updated, "https://x/muscleGroups/back.png")
	require.NoError(t, err)

	require.True(t, store.HasDeleted("muscleGroups/traps-old.png"))
	require.True(t, store.HasDeleted("muscleGroups/erectors.png"))
	require.False(t, store.HasDeleted("muscleGroups/lats.png"))
	require.False(t, store.HasDeleted("muscleGroups/back.png"))

	got, err := svc.GetMuscleGroupByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got.Muscles)
}

func TestMuscleGroupService_UpdateDeletesReplacedGroupImage(t *testing.T) {
	svc, _, store := newMuscleGroupService(t)
	ctx := context.Background()

	created, err := svc.CreateMuscleGroup(ctx, "Core", []domain.Muscle{
		{Name: "Abs", ImageURL: "https://x/muscleGroups/abs.png"},
	}, "https://x/muscleGroups/core-old.png")
	require.NoError(t, err)

	_, err = svc.UpdateMuscleGroup(ctx, created.ID, "Core", created.Muscles, "https://x/muscleGroups/core-new.png")
	require.NoError(t, err)

	require.True(t, store.HasDeleted("muscleGroups/core-old.png"))
	require.False(t, store.HasDeleted("muscleGroups/abs.png"))
}

func TestMuscleGroupService_DeleteRemovesAllImages(t *testing.T) {
	svc, _, store := newMuscleGroupService(t)
	ctx := context.Background()

	created, err := svc.CreateMuscleGroup(ctx, "Shoulders", []domain.Muscle{
		{Name: "Front delt", ImageURL: "https://x/muscleGroups/front.png"},
		{Name: "Rear delt", ImageURL: "https://x/muscleGroups/rear.png"},
	}, "https://x/muscleGroups/shoulders.png")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMuscleGroup(ctx, created.ID))

	require.True(t, store.HasDeleted("muscleGroups/shoulders.png"))
	require.True(t, store.HasDeleted("muscleGroups/front.png"))
	require.True(t, store.HasDeleted("muscleGroups/rear.png"))

	_, err = svc.GetMuscleGroupByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrMuscleGroupNotFound)
}

func TestMuscleGroupService_Reset(t *testing.T) {
	svc, _, store := newMuscleGroupService(t)
	ctx := context.Background()

	_, err := svc.CreateMuscleGroup(ctx, "Legacy", []domain.Muscle{
		{Name: "One", ImageURL: "https://x/muscleGroups/one.png"},
		{Name: "Two", ImageURL: "https://x/muscleGroups/two.png"},
	}, "https://x/muscleGroups/legacy.png")
	require.NoError(t, err)

	count, err := svc.Reset(ctx)
	require.NoError(t, err)

	canonical, err := dataset.CanonicalMuscleGroups()
	require.NoError(t, err)
	require.Equal(t, len(canonical), count)

	// Both embedded muscle images were cleaned up before the wipe.
	require.True(t, store.HasDeleted("muscleGroups/one.png"))
	require.True(t, store.HasDeleted("muscleGroups/two.png"))

	groups, err := svc.ListMuscleGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, len(canonical))

	names := make(map[string]bool, len(groups))
	for _, g := range groups {
		names[g.Name] = true
	}
	require.False(t, names["Legacy"])
	require.True(t, names["Chest"])
	require.True(t, names["Arms"])
}

func TestMuscleGroupService_ResetSurvivesStorageFailure(t *testing.T) {
	svc, _, store := newMuscleGroupService(t)
	ctx := context.Background()

	_, err := svc.CreateMuscleGroup(ctx, "Legacy", []domain.Muscle{
		{Name: "One", ImageURL: "https://x/muscleGroups/one.png"},
	}, "")
	require.NoError(t, err)

	store.FailDeletes = true

	count, err := svc.Reset(ctx)
	require.NoError(t, err)
	require.Greater(t, count, 0)
}

func TestMuscleGroupService_BulkUpload(t *testing.T) {
	svc, _, _ := newMuscleGroupService(t)
	ctx := context.Background()

	err := svc.BulkUpload(ctx, map[string][]domain.Muscle{
		"Chest": {{Name: "Pecs", ImageURL: "https://x/pecs.png"}},
		"Back":  {{Name: "Lats", ImageURL: "https://x/lats.png"}},
	})
	require.NoError(t, err)

	groups, err := svc.ListMuscleGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	err = svc.BulkUpload(ctx, map[string][]domain.Muscle{})
	require.ErrorIs(t, err, ErrValidationFailed)
}
