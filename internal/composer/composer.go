// Package composer implements the multi-stage workout composition flow:
// a wizard that builds a Workout from nested collections (exercise groups,
// then exercises with sets/reps/weight) with reorder, edit and validation.
//
// Groups carry a locally generated stable key so that edit, delete and
// reorder operations survive concurrent list mutations; the key never
// leaves the package, Assemble strips it when producing the domain value.
package composer

import (
	"context"
	"errors"
	"strings"

	"fourtyfit/workout-app/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stage identifies one step of the composition wizard.
type Stage int

const (
	StageTitle Stage = iota
	StageDetails
	StageGroup
	StageReview
)

func (s Stage) String() string {
	switch s {
	case StageTitle:
		return "title"
	case StageDetails:
		return "details"
	case StageGroup:
		return "group"
	case StageReview:
		return "review"
	default:
		return "unknown"
	}
}

const defaultSets = 1

var (
	ErrEmptyName    = errors.New("workout name must not be empty")
	ErrNameTaken    = errors.New("a workout with this name already exists")
	ErrNoGroups     = errors.New("workout needs at least one exercise group")
	ErrEmptyGroup   = errors.New("every exercise group needs at least one exercise")
	ErrNoImage      = errors.New("workout image is required")
	ErrUnknownGroup = errors.New("no exercise group with that key")
	ErrBadMove      = errors.New("reorder indexes out of range")
)

// NameChecker answers the advisory workout-name uniqueness question.
// The answer can go stale between check and submit; the flow re-checks at
// submission time but the race stays open without a storage-level constraint.
type NameChecker interface {
	WorkoutNameExists(ctx context.Context, name string) (bool, error)
}

// Entry is one exercise inside the group being composed.
type Entry struct {
	ExerciseID string
	Reps       int
	Weight     float64
}

// Group is an exercise group under composition. Key is the locally generated
// stable identity used by all edit operations.
type Group struct {
	Key       string
	Sets      int
	Exercises []Entry
}

func (g Group) clone() Group {
	c := g
	c.Exercises = make([]Entry, len(g.Exercises))
	copy(c.Exercises, g.Exercises)
	return c
}

func newScratch() Group {
	return Group{Key: uuid.NewString(), Sets: defaultSets, Exercises: []Entry{}}
}

// Form holds the wizard state for composing one workout. It is not safe for
// concurrent use; one form per editing session.
type Form struct {
	checker NameChecker

	stage        Stage
	workoutID    primitive.ObjectID
	originalName string
	name         string
	imageURL     string
	groups       []Group
	scratch      Group
	editingKey   string
}

// NewForm creates a form for composing a workout from scratch.
func NewForm(checker NameChecker) *Form {
	return &Form{
		checker: checker,
		stage:   StageTitle,
		scratch: newScratch(),
	}
}

// Load rehydrates the form from an existing workout for editing. Each
// persisted group gets a fresh stable key.
func Load(checker NameChecker, workout domain.Workout) *Form {
	f := NewForm(checker)
	f.workoutID = workout.ID
	f.originalName = workout.Name
	f.name = workout.Name
	f.imageURL = workout.ImageURL
	f.groups = make([]Group, 0, len(workout.ExerciseGroups))
	for _, g := range workout.ExerciseGroups {
		entries := make([]Entry, 0, len(g.Exercises))
		for _, e := range g.Exercises {
			entries = append(entries, Entry{ExerciseID: e.ExerciseID, Reps: e.Reps, Weight: e.Weight})
		}
		f.groups = append(f.groups, Group{Key: uuid.NewString(), Sets: g.Sets, Exercises: entries})
	}
	return f
}

// Stage returns the wizard's current stage.
func (f *Form) Stage() Stage { return f.stage }

// Name returns the workout name as currently entered.
func (f *Form) Name() string { return f.name }

// ImageURL returns the workout image URL as currently set.
func (f *Form) ImageURL() string { return f.imageURL }

// Groups returns a copy of the composed groups, in order.
func (f *Form) Groups() []Group {
	out := make([]Group, 0, len(f.groups))
	for _, g := range f.groups {
		out = append(out, g.clone())
	}
	return out
}

// Scratch returns a copy of the group currently being composed.
func (f *Form) Scratch() Group { return f.scratch.clone() }

// Editing reports whether the scratch group replaces an existing group on save.
func (f *Form) Editing() bool { return f.editingKey != "" }

// SetName updates the workout name. Validation happens on stage advance and
// at assembly; typing is never blocked.
func (f *Form) SetName(name string) { f.name = name }

// SetImageURL records the image URL obtained from the upload helper.
func (f *Form) SetImageURL(url string) { f.imageURL = url }

// CheckName runs the advisory uniqueness check against the persistence
// layer. The workout's own original name never conflicts with itself.
func (f *Form) CheckName(ctx context.Context) error {
	name := strings.TrimSpace(f.name)
	if name == "" {
		return ErrEmptyName
	}
	if name == f.originalName {
		return nil
	}
	taken, err := f.checker.WorkoutNameExists(ctx, name)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	return nil
}

// Next advances the wizard one stage. Leaving the title stage requires a
// non-empty trimmed name with no known conflict; later transitions are free.
// From review, Next wraps back to the group stage to add another group.
func (f *Form) Next(ctx context.Context) error {
	switch f.stage {
	case StageTitle:
		if err := f.CheckName(ctx); err != nil {
			return err
		}
		f.stage = StageDetails
	case StageDetails:
		f.stage = StageGroup
	case StageGroup:
		f.stage = StageReview
	case StageReview:
		f.stage = StageGroup
	}
	return nil
}

// Back moves the wizard one stage towards the title.
func (f *Form) Back() {
	switch f.stage {
	case StageDetails:
		f.stage = StageTitle
	case StageGroup:
		f.stage = StageDetails
	case StageReview:
		f.stage = StageGroup
	}
}

// SetSets updates the set count of the scratch group.
func (f *Form) SetSets(sets int) { f.scratch.Sets = sets }

// ToggleExercise flips an exercise in or out of the scratch group: present
// entries are removed, absent ones appended with zeroed reps and weight.
// Toggling twice restores the prior entry list.
func (f *Form) ToggleExercise(exerciseID string) {
	for i, e := range f.scratch.Exercises {
		if e.ExerciseID == exerciseID {
			f.scratch.Exercises = append(f.scratch.Exercises[:i], f.scratch.Exercises[i+1:]...)
			return
		}
	}
	f.scratch.Exercises = append(f.scratch.Exercises, Entry{ExerciseID: exerciseID})
}

// SetReps updates the rep count of an exercise in the scratch group.
func (f *Form) SetReps(exerciseID string, reps int) {
	for i := range f.scratch.Exercises {
		if f.scratch.Exercises[i].ExerciseID == exerciseID {
			f.scratch.Exercises[i].Reps = reps
			return
		}
	}
}

// SetWeight updates the weight of an exercise in the scratch group.
func (f *Form) SetWeight(exerciseID string, weight float64) {
	for i := range f.scratch.Exercises {
		if f.scratch.Exercises[i].ExerciseID == exerciseID {
			f.scratch.Exercises[i].Weight = weight
			return
		}
	}
}

// SaveGroup commits the scratch group: appended when composing fresh,
// replacing its source group when editing. The scratch resets to an empty
// single-set group and the wizard lands on review. Empty groups may be
// saved; assembly rejects them.
func (f *Form) SaveGroup() {
	if f.editingKey != "" {
		for i := range f.groups {
			if f.groups[i].Key == f.editingKey {
				saved := f.scratch.clone()
				saved.Key = f.editingKey
				f.groups[i] = saved
				break
			}
		}
		f.editingKey = ""
	} else {
		saved := f.scratch.clone()
		f.groups = append(f.groups, saved)
	}
	f.scratch = newScratch()
	f.stage = StageReview
}

// EditGroup rehydrates the scratch group from an existing group by value
// copy and records its key for replace-on-save. The wizard returns to the
// group stage.
func (f *Form) EditGroup(key string) error {
	for _, g := range f.groups {
		if g.Key == key {
			f.scratch = g.clone()
			f.editingKey = key
			f.stage = StageGroup
			return nil
		}
	}
	return ErrUnknownGroup
}

// DeleteGroup removes a group. Deleting the group currently being edited
// turns the pending save back into an append.
func (f *Form) DeleteGroup(key string) error {
	for i, g := range f.groups {
		if g.Key == key {
			f.groups = append(f.groups[:i], f.groups[i+1:]...)
			if f.editingKey == key {
				f.editingKey = ""
			}
			return nil
		}
	}
	return ErrUnknownGroup
}

// MoveGroup extracts the group at src and reinserts it at dst, list-splice
// style: all other groups keep their relative order.
func (f *Form) MoveGroup(src, dst int) error {
	if src < 0 || src >= len(f.groups) || dst < 0 || dst >= len(f.groups) {
		return ErrBadMove
	}
	if src == dst {
		return nil
	}
	moved := f.groups[src]
	rest := append(f.groups[:src:src], f.groups[src+1:]...)
	f.groups = append(rest[:dst:dst], append([]Group{moved}, rest[dst:]...)...)
	return nil
}

// Assemble validates the composed workout and produces the domain value,
// stripping the local group keys. The advisory name check runs once more;
// a concurrent session may still have taken the name between this check and
// the actual write. Form state is untouched on failure, so a failed submit
// can be corrected and retried.
func (f *Form) Assemble(ctx context.Context) (*domain.Workout, error) {
	name := strings.TrimSpace(f.name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(f.groups) == 0 {
		return nil, ErrNoGroups
	}
	for _, g := range f.groups {
		if len(g.Exercises) == 0 {
			return nil, ErrEmptyGroup
		}
	}
	if f.imageURL == "" {
		return nil, ErrNoImage
	}
	if err := f.CheckName(ctx); err != nil {
		return nil, err
	}

	groups := make([]domain.ExerciseGroup, 0, len(f.groups))
	for _, g := range f.groups {
		exercises := make([]domain.WorkoutExercise, 0, len(g.Exercises))
		for _, e := range g.Exercises {
			exercises = append(exercises, domain.WorkoutExercise{
				ExerciseID: e.ExerciseID,
				Reps:       e.Reps,
				Weight:     e.Weight,
			})
		}
		groups = append(groups, domain.ExerciseGroup{Sets: g.Sets, Exercises: exercises})
	}

	return &domain.Workout{
		ID:             f.workoutID,
		Name:           name,
		ImageURL:       f.imageURL,
		ExerciseGroups: groups,
	}, nil
}
