package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Muscle is a single muscle belonging to exactly one MuscleGroup.
// Muscles are embedded in their group document and never referenced standalone.
type Muscle struct {
	Name        string `bson:"name" json:"name"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// MuscleGroup represents a named group of muscles, e.g. "Chest" or "Arms".
// The group owns its muscles: an update replaces the embedded array wholesale,
// and the service layer cleans up storage objects for muscles that were
// removed or whose image changed.
type MuscleGroup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Muscles   []Muscle           `bson:"muscles" json:"muscles"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasMuscle reports whether the group contains a muscle with the given name
// and image URL. Used when diffing old vs. new muscle lists on update.
func (g MuscleGroup) HasMuscle(name, imageURL string) bool {
	for _, m := range g.Muscles {
		if m.Name == name && m.ImageURL == imageURL {
			return true
		}
	}
	return false
}
