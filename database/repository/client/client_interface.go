package clientRepo

import (
	"errors"

	"github.com/cyue49/BookNow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound reports that no client document matched the targeted id. It is
// distinct from validation failures so callers can answer with the recoverable
// "does not exist" response.
var ErrNotFound = errors.New("client not found")

// ClientRepository defines data access methods for client documents and their
// nested collections. Nested operations take the collection field name
// ("address", "payment" or "recipient") and target one element by its own id.
type ClientRepository interface {
	FindAll() ([]models.Client, error)
	FindByID(id primitive.ObjectID) (*models.Client, error)
	Create(client *models.Client) (*models.Client, error)
	UpdateFields(id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PushNested(id primitive.ObjectID, field string, element interface{}) (*mongo.UpdateResult, error)
	UpdateNestedElement(id primitive.ObjectID, field string, elementID primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error)
	PullNested(id primitive.ObjectID, field string, elementID primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(id primitive.ObjectID) (*models.Client, error)
}
