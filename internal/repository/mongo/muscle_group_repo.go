package mongo

import (
	"context"
	"errors"
	"time"

	"fourtyfit/workout-app/internal/domain"
	"fourtyfit/workout-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const muscleGroupCollectionName = "muscleGroups"

// mongoMuscleGroupRepository implements repository.MuscleGroupRepository
type mongoMuscleGroupRepository struct {
	collection *mongo.Collection
}

// NewMongoMuscleGroupRepository creates a new MuscleGroup repository backed by MongoDB.
func NewMongoMuscleGroupRepository(db *mongo.Database) repository.MuscleGroupRepository {
	return &mongoMuscleGroupRepository{
		collection: db.Collection(muscleGroupCollectionName),
	}
}

// List retrieves all muscle group documents sorted by name.
func (r *mongoMuscleGroupRepository) List(ctx context.Context) ([]domain.MuscleGroup, error) {
	var groups []domain.MuscleGroup

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, cursor.Err()
}

// GetByID retrieves a muscle group by its ID.
func (r *mongoMuscleGroupRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MuscleGroup, error) {
	var group domain.MuscleGroup

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// ExistsByName reports whether any muscle group carries exactly the given name.
func (r *mongoMuscleGroupRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	err := r.collection.FindOne(
		ctx,
		bson.M{"name": name},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new muscle group document.
func (r *mongoMuscleGroupRepository) Create(ctx context.Context, group *domain.MuscleGroup) (primitive.ObjectID, error) {
	if group.Name == "" {
		return primitive.NilObjectID, errors.New("muscle group name is required")
	}

	group.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now
	if group.Muscles == nil {
		group.Muscles = []domain.Muscle{}
	}

	result, err := r.collection.InsertOne(ctx, group)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// CreateMany batch-inserts muscle group documents. Used by the reset and
// bulk-upload operations.
func (r *mongoMuscleGroupRepository) CreateMany(ctx context.Context, groups []domain.MuscleGroup) error {
	if len(groups) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(groups))
	for i := range groups {
		groups[i].ID = primitive.NewObjectID()
		groups[i].CreatedAt = now
		groups[i].UpdatedAt = now
		if groups[i].Muscles == nil {
			groups[i].Muscles = []domain.Muscle{}
		}
		docs = append(docs, groups[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Update replaces the mutable fields of an existing muscle group wholesale,
// embedded muscles included.
func (r *mongoMuscleGroupRepository) Update(ctx context.Context, group *domain.MuscleGroup) error {
	if group.ID == primitive.NilObjectID {
		return errors.New("muscle group ID is required for update")
	}
	if group.Name == "" {
		return errors.New("muscle group name cannot be empty")
	}

	update := bson.M{
		"$set": bson.M{
			"name":      group.Name,
			"muscles":   group.Muscles,
			"imageUrl":  group.ImageURL,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": group.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a muscle group document.
func (r *mongoMuscleGroupRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAll wipes the whole collection. Destructive and irreversible; only
// the reset operation calls this.
func (r *mongoMuscleGroupRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// EnsureMuscleGroupIndexes creates necessary indexes for the muscleGroups collection.
func EnsureMuscleGroupIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
