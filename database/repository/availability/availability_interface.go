package availabilityRepo

import (
	"errors"

	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports that no availability document matched the targeted id.
var ErrNotFound = errors.New("availability not found")

// AvailabilityRepository defines data access methods for availability
// documents and their owned hour entries.
type AvailabilityRepository interface {
	FindAll() ([]models.Availability, error)
	FindByFilter(filter bson.M) ([]models.Availability, error)
	FindByID(id primitive.ObjectID) (*models.Availability, error)
	Create(availability *models.Availability) (*models.Availability, error)
	UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PushHour(id primitive.ObjectID, slot models.HourSlot) (*mongo.UpdateResult, error)
	UpdateHour(id primitive.ObjectID, hourID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PullHour(id primitive.ObjectID, hourID primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(id primitive.ObjectID) (*models.Availability, error)
}
