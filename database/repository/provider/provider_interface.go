package providerRepo

import (
	"errors"

	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports that no provider document matched the targeted id.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines data access methods for provider documents.
// Nested operations target the "addresses" collection.
type ProviderRepository interface {
	FindAll() ([]models.Provider, error)
	FindByID(id primitive.ObjectID) (*models.Provider, error)
	Create(provider *models.Provider) (*models.Provider, error)
	UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error)
	UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(id primitive.ObjectID) (*models.Provider, error)
}
