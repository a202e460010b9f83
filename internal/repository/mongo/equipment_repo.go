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

const equipmentCollectionName = "equipment"

// mongoEquipmentRepository implements repository.EquipmentRepository
type mongoEquipmentRepository struct {
	collection *mongo.Collection
}

// NewMongoEquipmentRepository creates a new Equipment repository backed by MongoDB.
func NewMongoEquipmentRepository(db *mongo.Database) repository.EquipmentRepository {
	return &mongoEquipmentRepository{
		collection: db.Collection(equipmentCollectionName),
	}
}

// List retrieves all equipment documents, newest first.
func (r *mongoEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var equipment []domain.Equipment

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &equipment); err != nil {
		return nil, err
	}
	return equipment, cursor.Err()
}

// GetByID retrieves a single piece of equipment by its ID.
func (r *mongoEquipmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error) {
	var equipment domain.Equipment

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&equipment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

// ExistsByName reports whether any equipment document carries exactly the
// given name. Case-sensitive, first match only. This is a best-effort
// uniqueness check, not a constraint: the name index is not unique.
func (r *mongoEquipmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
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

// Create inserts a new equipment document.
func (r *mongoEquipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) (primitive.ObjectID, error) {
	if equipment.Name == "" {
		return primitive.NilObjectID, errors.New("equipment name is required")
	}

	equipment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	equipment.CreatedAt = now
	equipment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, equipment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// Update modifies an existing equipment document wholesale.
func (r *mongoEquipmentRepository) Update(ctx context.Context, equipment *domain.Equipment) error {
	if equipment.ID == primitive.NilObjectID {
		return errors.New("equipment ID is required for update")
	}
	if equipment.Name == "" {
		return errors.New("equipment name cannot be empty")
	}

	update := bson.M{
		"$set": bson.M{
			"name":        equipment.Name,
			"description": equipment.Description,
			"imageUrl":    equipment.ImageURL,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": equipment.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an equipment document.
func (r *mongoEquipmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureEquipmentIndexes creates necessary indexes for the equipment collection.
// The name index speeds up the existence check; it is deliberately not unique
// (the check-then-create race stays open, matching the documented design).
func EnsureEquipmentIndexes(ctx context.Context, collection *mongo.Collection) {
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
