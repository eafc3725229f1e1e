package bookingRepo

import (
	"errors"

	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports that no booking document matched the targeted id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access methods for booking documents.
type BookingRepository interface {
	FindAll() ([]models.Booking, error)
	FindByFilter(filter bson.M) ([]models.Booking, error)
	FindByID(id primitive.ObjectID) (*models.Booking, error)
	Create(booking *models.Booking) (*models.Booking, error)
	UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	Delete(id primitive.ObjectID) (*models.Booking, error)
}
