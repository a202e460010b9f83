package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the catalog.
//
// EquipmentIDs and MuscleGroupIDs are weak references (hex document ids):
// deleting the referenced Equipment or MuscleGroup does not touch the
// Exercise, and clients render dangling ids as "Unknown".
type Exercise struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl"`
	EquipmentIDs   []string           `bson:"equipmentIds" json:"equipmentIds"`
	MuscleGroupIDs []string           `bson:"muscleGroupIds" json:"muscleGroupIds"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
