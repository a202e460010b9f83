package composer

import (
	"context"
	"testing"

	"fourtyfit/workout-app/internal/domain"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeChecker answers the name check from a fixed set of taken names.
type fakeChecker struct {
	taken map[string]bool
	err   error
}

func (c *fakeChecker) WorkoutNameExists(_ context.Context, name string) (bool, error) {
	return c.taken[name], c.err
}

func newTestForm(takenNames ...string) *Form {
	taken := make(map[string]bool, len(takenNames))
	for _, n := range takenNames {
		taken[n] = true
	}
	return NewForm(&fakeChecker{taken: taken})
}

// composeGroup fills the scratch group with one exercise and saves it.
func composeGroup(f *Form, exerciseID string, sets, reps int) {
	f.ToggleExercise(exerciseID)
	f.SetSets(sets)
	f.SetReps(exerciseID, reps)
	f.SaveGroup()
}

func TestForm_TitleStageGuard(t *testing.T) {
	ctx := context.Background()

	f := newTestForm()
	require.Equal(t, StageTitle, f.Stage())
	require.ErrorIs(t, f.Next(ctx), ErrEmptyName)
	require.Equal(t, StageTitle, f.Stage())

	f.SetName("   ")
	require.ErrorIs(t, f.Next(ctx), ErrEmptyName)

	f = newTestForm("Leg Day")
	f.SetName("Leg Day")
	require.ErrorIs(t, f.Next(ctx), ErrNameTaken)
	require.Equal(t, StageTitle, f.Stage())

	f.SetName("Leg Day 2")
	require.NoError(t, f.Next(ctx))
	require.Equal(t, StageDetails, f.Stage())
}

func TestForm_StageCycle(t *testing.T) {
	ctx := context.Background()
	f := newTestForm()
	f.SetName("Cycle")

	require.NoError(t, f.Next(ctx)) // title -> details
	require.NoError(t, f.Next(ctx)) // details -> group
	require.Equal(t, StageGroup, f.Stage())
	require.NoError(t, f.Next(ctx)) // group -> review
	require.Equal(t, StageReview, f.Stage())

	// Review wraps back to group composition for the next group.
	require.NoError(t, f.Next(ctx))
	require.Equal(t, StageGroup, f.Stage())

	f.Back()
	require.Equal(t, StageDetails, f.Stage())
	f.Back()
	require.Equal(t, StageTitle, f.Stage())
	f.Back()
	require.Equal(t, StageTitle, f.Stage())
}

func TestForm_ToggleExerciseIsIdempotentPair(t *testing.T) {
	f := newTestForm()

	f.ToggleExercise("e1")
	f.ToggleExercise("e2")
	f.SetReps("e1", 10)
	before := f.Scratch().Exercises

	f.ToggleExercise("e3")
	f.ToggleExercise("e3")
	require.Equal(t, before, f.Scratch().Exercises)

	// Toggling an existing entry removes it, keeping the others in order.
	f.ToggleExercise("e1")
	got := f.Scratch().Exercises
	require.Len(t, got, 1)
	require.Equal(t, "e2", got[0].ExerciseID)
}

func TestForm_ScratchDefaults(t *testing.T) {
	f := newTestForm()

	scratch := f.Scratch()
	require.Equal(t, 1, scratch.Sets)
	require.Empty(t, scratch.Exercises)

	f.ToggleExercise("e1")
	entry := f.Scratch().Exercises[0]
	require.Zero(t, entry.Reps)
	require.Zero(t, entry.Weight)

	f.SetReps("e1", 12)
	f.SetWeight("e1", 42.5)
	entry = f.Scratch().Exercises[0]
	require.Equal(t, 12, entry.Reps)
	require.Equal(t, 42.5, entry.Weight)

	// Updates to unknown exercises are dropped silently.
	f.SetReps("missing", 5)
	require.Len(t, f.Scratch().Exercises, 1)
}

func TestForm_SaveGroupAppendsAndResets(t *testing.T) {
	f := newTestForm()

	composeGroup(f, "e1", 3, 10)
	require.Equal(t, StageReview, f.Stage())

	groups := f.Groups()
	require.Len(t, groups, 1)
	require.NotEmpty(t, groups[0].Key)
	require.Equal(t, 3, groups[0].Sets)
	require.Equal(t, []Entry{{ExerciseID: "e1", Reps: 10}}, groups[0].Exercises)

	// The scratch is fresh again.
	require.Empty(t, f.Scratch().Exercises)
	require.Equal(t, 1, f.Scratch().Sets)

	composeGroup(f, "e2", 5, 8)
	groups = f.Groups()
	require.Len(t, groups, 2)
	require.NotEqual(t, groups[0].Key, groups[1].Key)
}

func TestForm_EditGroupReplacesAtKey(t *testing.T) {
	f := newTestForm()
	composeGroup(f, "e1", 3, 10)
	composeGroup(f, "e2", 5, 8)

	key := f.Groups()[0].Key
	require.NoError(t, f.EditGroup(key))
	require.True(t, f.Editing())
	require.Equal(t, StageGroup, f.Stage())
	require.Equal(t, []Entry{{ExerciseID: "e1", Reps: 10}}, f.Scratch().Exercises)

	f.SetSets(4)
	f.SetReps("e1", 6)
	f.SaveGroup()

	groups := f.Groups()
	require.Len(t, groups, 2)
	require.Equal(t, key, groups[0].Key)
	require.Equal(t, 4, groups[0].Sets)
	require.Equal(t, 6, groups[0].Exercises[0].Reps)
	require.False(t, f.Editing())

	require.ErrorIs(t, f.EditGroup("no-such-key"), ErrUnknownGroup)
}

func TestForm_DeleteGroup(t *testing.T) {
	f := newTestForm()
	composeGroup(f, "e1", 3, 10)
	composeGroup(f, "e2", 5, 8)

	first := f.Groups()[0].Key
	require.NoError(t, f.DeleteGroup(first))
	groups := f.Groups()
	require.Len(t, groups, 1)
	require.Equal(t, "e2", groups[0].Exercises[0].ExerciseID)

	require.ErrorIs(t, f.DeleteGroup(first), ErrUnknownGroup)
}

func TestForm_DeleteGroupUnderEditRevertsToAppend(t *testing.T) {
	f := newTestForm()
	composeGroup(f, "e1", 3, 10)

	key := f.Groups()[0].Key
	require.NoError(t, f.EditGroup(key))
	require.NoError(t, f.DeleteGroup(key))
	require.False(t, f.Editing())

	// Saving now appends instead of replacing a group that is gone.
	f.SaveGroup()
	require.Len(t, f.Groups(), 1)
}

func TestForm_MoveGroup(t *testing.T) {
	f := newTestForm()
	composeGroup(f, "e0", 1, 10)
	composeGroup(f, "e1", 2, 10)
	composeGroup(f, "e2", 3, 10)

	require.NoError(t, f.MoveGroup(0, 2))
	var ids []string
	for _, g := range f.Groups() {
		ids = append(ids, g.Exercises[0].ExerciseID)
	}
	require.Equal(t, []string{"e1", "e2", "e0"}, ids)

	require.NoError(t, f.MoveGroup(2, 0))
	ids = ids[:0]
	for _, g := range f.Groups() {
		ids = append(ids, g.Exercises[0].ExerciseID)
	}
	require.Equal(t, []string{"e0", "e1", "e2"}, ids)

	require.NoError(t, f.MoveGroup(1, 1))
	require.ErrorIs(t, f.MoveGroup(-1, 0), ErrBadMove)
	require.ErrorIs(t, f.MoveGroup(0, 3), ErrBadMove)
}

func TestForm_AssembleValidates(t *testing.T) {
	ctx := context.Background()

	f := newTestForm()
	_, err := f.Assemble(ctx)
	require.ErrorIs(t, err, ErrEmptyName)

	f.SetName("Push Day")
	_, err = f.Assemble(ctx)
	require.ErrorIs(t, err, ErrNoGroups)

	f.SaveGroup() // empty group can be saved, assembly rejects it
	_, err = f.Assemble(ctx)
	require.ErrorIs(t, err, ErrEmptyGroup)

	require.NoError(t, f.DeleteGroup(f.Groups()[0].Key))
	composeGroup(f, "e1", 3, 10)
	_, err = f.Assemble(ctx)
	require.ErrorIs(t, err, ErrNoImage)

	// Failure left the composed state intact.
	require.Equal(t, "Push Day", f.Name())
	require.Len(t, f.Groups(), 1)

	f.SetImageURL("https://x/workouts/push.png")
	workout, err := f.Assemble(ctx)
	require.NoError(t, err)
	require.Equal(t, "Push Day", workout.Name)
}

func TestForm_AssembleChecksNameAgain(t *testing.T) {
	f := newTestForm("Taken")
	f.SetName("Taken")
	f.SetImageURL("https://x/workouts/w.png")
	composeGroup(f, "e1", 3, 10)

	_, err := f.Assemble(context.Background())
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestForm_AssembleStripsKeys(t *testing.T) {
	f := newTestForm()
	f.SetName("  Full Body  ")
	f.SetImageURL("https://x/workouts/full.png")

	f.ToggleExercise("e1")
	f.SetSets(3)
	f.SetReps("e1", 10)
	f.SetWeight("e1", 20)
	f.SaveGroup()
	composeGroup(f, "e2", 5, 5)

	workout, err := f.Assemble(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Full Body", workout.Name)
	require.True(t, workout.ID.IsZero())
	require.Equal(t, []domain.ExerciseGroup{
		{Sets: 3, Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Reps: 10, Weight: 20}}},
		{Sets: 5, Exercises: []domain.WorkoutExercise{{ExerciseID: "e2", Reps: 5}}},
	}, workout.ExerciseGroups)
}

func TestLoad_RehydratesWithFreshKeys(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	existing := domain.Workout{
		ID:       id,
		Name:     "Existing",
		ImageURL: "https://x/workouts/existing.png",
		ExerciseGroups: []domain.ExerciseGroup{
			{Sets: 3, Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Reps: 10, Weight: 20}}},
		},
	}

	f := Load(&fakeChecker{taken: map[string]bool{"Existing": true}}, existing)
	require.Equal(t, "Existing", f.Name())
	groups := f.Groups()
	require.Len(t, groups, 1)
	require.NotEmpty(t, groups[0].Key)

	// The workout's own persisted name never conflicts with itself.
	require.NoError(t, f.CheckName(ctx))

	workout, err := f.Assemble(ctx)
	require.NoError(t, err)
	require.Equal(t, id, workout.ID)
	require.Equal(t, existing.ExerciseGroups, workout.ExerciseGroups)
}
