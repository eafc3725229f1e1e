package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/cyue49/BookNow/database"
	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availabilities")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes covers the provider- and date-scoped queries.
func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) FindAll() ([]models.Availability, error) {
	return r.FindByFilter(bson.M{})
}

// FindByFilter retrieves availability documents matching an arbitrary filter,
// used for the provider- and date-scoped reads.
func (r *MongoAvailabilityRepo) FindByFilter(filter bson.M) ([]models.Availability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availabilities: %w", err)
	}
	defer cursor.Close(ctx)

	availabilities := []models.Availability{}
	for cursor.Next(ctx) {
		var a models.Availability
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode availability: %w", err)
		}
		availabilities = append(availabilities, a)
	}
	return availabilities, cursor.Err()
}

func (r *MongoAvailabilityRepo) FindByID(id primitive.ObjectID) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var availability models.Availability
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&availability); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch availability with id %s: %w", id.Hex(), err)
	}
	return &availability, nil
}

func (r *MongoAvailabilityRepo) Create(availability *models.Availability) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	availability.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, availability); err != nil {
		return nil, err
	}
	return availability, nil
}

func (r *MongoAvailabilityRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update availability with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// PushHour appends one hour entry. Hours are not deduplicated; the same value
// may be appended repeatedly.
func (r *MongoAvailabilityRepo) PushHour(id primitive.ObjectID, slot models.HourSlot) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"availableHours": slot}})
	if err != nil {
		return nil, fmt.Errorf("failed to push hour for availability %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoAvailabilityRepo) UpdateHour(id primitive.ObjectID, hourID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prefixed := bson.M{}
	for key, value := range set {
		prefixed["availableHours.$[el]."+key] = value
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"el._id": hourID}},
	})

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": prefixed}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update hour for availability %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoAvailabilityRepo) PullHour(id primitive.ObjectID, hourID primitive.ObjectID) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"availableHours": bson.M{"_id": hourID}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to pull hour for availability %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoAvailabilityRepo) Delete(id primitive.ObjectID) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var availability models.Availability
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&availability); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("availability %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete availability with id %s: %w", id.Hex(), err)
	}
	return &availability, nil
}
