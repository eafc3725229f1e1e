package serviceRepo

import (
	"errors"

	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports that no service document matched the targeted id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines data access methods for service documents.
type ServiceRepository interface {
	FindAll() ([]models.Service, error)
	FindByID(id primitive.ObjectID) (*models.Service, error)
	Create(service *models.Service) (*models.Service, error)
	UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	Delete(id primitive.ObjectID) (*models.Service, error)
}
