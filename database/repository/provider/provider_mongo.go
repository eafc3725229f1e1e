package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.DB().Collection("providers")
	repo := &MongoProviderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) FindAll() ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	providers := []models.Provider{}
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, cursor.Err()
}

func (r *MongoProviderRepo) FindByID(id primitive.ObjectID) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id.Hex(), err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) Create(provider *models.Provider) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	provider.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

func (r *MongoProviderRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update provider with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoProviderRepo) PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{field: element}})
	if err != nil {
		return nil, fmt.Errorf("failed to push to %s for provider %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoProviderRepo) UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prefixed := bson.M{}
	for key, value := range set {
		prefixed[field+".$[el]."+key] = value
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"el._id": elementID}},
	})

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": prefixed}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s element for provider %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoProviderRepo) PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{field: bson.M{"_id": elementID}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to pull from %s for provider %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoProviderRepo) Delete(id primitive.ObjectID) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("provider %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete provider with id %s: %w", id.Hex(), err)
	}
	return &provider, nil
}
