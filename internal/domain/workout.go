package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutExercise is one entry inside an exercise group: an exercise
// reference plus the prescribed reps and weight. ExerciseID is a weak
// reference; it may dangle after the exercise is deleted.
type WorkoutExercise struct {
	ExerciseID string  `bson:"exerciseId" json:"exerciseId"`
	Reps       int     `bson:"reps" json:"reps"`
	Weight     float64 `bson:"weight" json:"weight"`
}

// ExerciseGroup is an ordered sub-collection of a Workout pairing a set
// count with a list of exercise entries. Groups have no identity of their
// own; their position in the workout's slice is their only identity once
// persisted.
type ExerciseGroup struct {
	Exercises []WorkoutExercise `bson:"exercises" json:"exercises"`
	Sets      int               `bson:"sets" json:"sets"`
}

// Workout is a user-composed workout: a name, an image, and an ordered list
// of exercise groups.
//
// MuscleGroups and Equipment are derived fields: the union of the muscle
// group and equipment ids reachable through the workout's exercises. They
// are recomputed from the exercises collection on every read and never
// persisted (see WorkoutService).
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl"`
	MuscleGroups   []string           `bson:"-" json:"muscleGroups"`
	Equipment      []string           `bson:"-" json:"equipment"`
	ExerciseGroups []ExerciseGroup    `bson:"exerciseGroups" json:"exerciseGroups"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseIDs returns the ids of every exercise referenced by the workout's
// groups, in order, without deduplication.
func (w Workout) ExerciseIDs() []string {
	var ids []string
	for _, g := range w.ExerciseGroups {
		for _, e := range g.Exercises {
			ids = append(ids, e.ExerciseID)
		}
	}
	return ids
}
