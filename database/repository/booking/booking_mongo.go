package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes covers the relation-scoped booking queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client", Value: 1}}},
		{Keys: bson.D{{Key: "provider", Value: 1}}},
		{Keys: bson.D{{Key: "service", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) FindAll() ([]models.Booking, error) {
	return r.FindByFilter(bson.M{})
}

// FindByFilter retrieves booking documents matching an arbitrary filter, used
// for the client/provider/service/date-scoped reads.
func (r *MongoBookingRepo) FindByFilter(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, cursor.Err()
}

func (r *MongoBookingRepo) FindByID(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

// Create inserts a new booking document. References are stored as given; no
// existence check is made against the referenced collections.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *MongoBookingRepo) UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

func (r *MongoBookingRepo) Delete(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id.Hex(), err)
	}
	return &booking, nil
}
