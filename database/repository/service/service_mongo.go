package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/cyue49/BookNow/database"
	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.DB().Collection("services")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) FindAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, cursor.Err()
}

func (r *MongoServiceRepo) FindByID(id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id.Hex(), err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) Create(service *models.Service) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (r *MongoServiceRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update service with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("service %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoServiceRepo) Delete(id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete service with id %s: %w", id.Hex(), err)
	}
	return &service, nil
}
