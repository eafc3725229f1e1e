package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.DB().Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces email uniqueness across clients.
func (r *MongoClientRepo) ensureIndexes() error {
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

// FindAll retrieves all client documents.
func (r *MongoClientRepo) FindAll() ([]models.Client, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	for cursor.Next(ctx) {
		var c models.Client
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, cursor.Err()
}

// FindByID retrieves a client document by its id.
func (r *MongoClientRepo) FindByID(id primitive.ObjectID) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id.Hex(), err)
	}
	return &client, nil
}

// Create inserts a new client document and echoes it back with its assigned
// id. A duplicate email surfaces the store's error unchanged.
func (r *MongoClientRepo) Create(client *models.Client) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	client.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateFields overwrites only the named fields on one client document.
func (r *MongoClientRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update client with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// PushNested appends one element to a nested collection.
func (r *MongoClientRepo) PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{field: element}})
	if err != nil {
		return nil, fmt.Errorf("failed to push to %s for client %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// UpdateNestedElement sets fields on the one nested element whose id matches.
// The array filter targets a unique nested id, so at most one element changes.
func (r *MongoClientRepo) UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
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
		return nil, fmt.Errorf("failed to update %s element for client %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// PullNested removes the one nested element whose id matches.
func (r *MongoClientRepo) PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{field: bson.M{"_id": elementID}}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to pull from %s for client %s: %w", field, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// Delete removes a client document by its id and returns the removed document.
func (r *MongoClientRepo) Delete(id primitive.ObjectID) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("client %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete client with id %s: %w", id.Hex(), err)
	}
	return &client, nil
}
