package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable service. Price carries no currency, value only.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
}

// ServiceCreate is the POST /api/services payload.
type ServiceCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

func (r ServiceCreate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("is required")),
		validation.Field(&r.Description, validation.Required.Error("is required")),
		validation.Field(&r.Price, validation.NotNil.Error("is required")),
	), "name", "description", "price")
}

func (r ServiceCreate) ToService() *Service {
	return &Service{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       *r.Price,
	}
}

// ServiceUpdate is the PUT /api/services/:id payload.
type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (r ServiceUpdate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("cannot be empty")),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("cannot be empty")),
	), "name", "description")
}

func (r ServiceUpdate) SetDoc() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		set["description"] = strings.TrimSpace(*r.Description)
	}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	return set
}
