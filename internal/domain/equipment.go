package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Equipment represents a single piece of gym equipment in the catalog.
// The image itself lives in object storage; ImageURL is its public URL.
type Equipment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
