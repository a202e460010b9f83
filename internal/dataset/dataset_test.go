package dataset

import (
	"testing"

	"fourtyfit/workout-app/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCanonicalMuscleGroups(t *testing.T) {
	groups, err := CanonicalMuscleGroups()
	require.NoError(t, err)
	require.Len(t, groups, 7)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	require.Equal(t, []string{"Arms", "Back", "Chest", "Core", "Glutes", "Legs", "Shoulders"}, names)

	for _, g := range groups {
		require.NotEmpty(t, g.ImageURL, "group %s", g.Name)
		require.NotEmpty(t, g.Muscles, "group %s", g.Name)
		for _, m := range g.Muscles {
			require.NotEmpty(t, m.Name)
			require.NotEmpty(t, m.ImageURL)
		}
	}
}

func TestLoad_FlattensNestedSubGroups(t *testing.T) {
	groups, err := CanonicalMuscleGroups()
	require.NoError(t, err)

	arms := groups[0]
	require.Equal(t, "Arms", arms.Name)

	// Sub-groups contribute their muscles in sub-group name order
	// (Biceps, Forearms, Triceps).
	var muscles []string
	for _, m := range arms.Muscles {
		muscles = append(muscles, m.Name)
	}
	require.Equal(t, []string{
		"Biceps Brachii", "Brachialis",
		"Brachioradialis", "Wrist Flexors",
		"Triceps Brachii",
	}, muscles)

	// The last sub-group's image wins.
	require.Equal(t, "https://storage.fourtyfit.app/muscleGroups/triceps.png", arms.ImageURL)
}

func TestLoad_NestedImageFallback(t *testing.T) {
	raw := []byte(`{
		"Arms": {
			"Biceps": {"imageUrl": "https://x/biceps.png", "muscles": [{"name": "Biceps Brachii", "imageUrl": "https://x/bb.png"}]},
			"Triceps": {"muscles": [{"name": "Triceps Brachii", "imageUrl": "https://x/tb.png"}]}
		}
	}`)
	groups, err := Load(raw)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	// Triceps has no image, so the earlier Biceps image carries through.
	require.Equal(t, "https://x/biceps.png", groups[0].ImageURL)
	require.Len(t, groups[0].Muscles, 2)
}

func TestLoad_RejectsDeepNesting(t *testing.T) {
	raw := []byte(`{
		"Arms": {
			"Upper": {
				"Biceps": {"muscles": [{"name": "Biceps Brachii", "imageUrl": "https://x/bb.png"}]}
			}
		}
	}`)
	_, err := Load(raw)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nested deeper")
}

func TestLoad_RejectsMalformedInput(t *testing.T) {
	_, err := Load([]byte(`not json`))
	require.Error(t, err)

	_, err = Load([]byte(`{"Chest": "flat string"}`))
	require.Error(t, err)
}

func TestLoad_LeafWithoutMusclesGetsEmptySlice(t *testing.T) {
	raw := []byte(`{"Chest": {"imageUrl": "https://x/chest.png"}}`)
	groups, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, []domain.Muscle{}, groups[0].Muscles)
	require.Equal(t, "https://x/chest.png", groups[0].ImageURL)
}
