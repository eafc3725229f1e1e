package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking ties a client, provider and service together for a date. All
// references are weak: identifier shape is validated, existence is not.
// Address and payment point into the client's nested collections and the
// optional recipient points at one of the client's recipients.
type Booking struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Client    primitive.ObjectID  `bson:"client" json:"client"`
	Provider  primitive.ObjectID  `bson:"provider" json:"provider"`
	Service   primitive.ObjectID  `bson:"service" json:"service"`
	Date      time.Time           `bson:"date" json:"date"`
	Address   primitive.ObjectID  `bson:"address" json:"address"`
	Payment   primitive.ObjectID  `bson:"payment" json:"payment"`
	Recipient *primitive.ObjectID `bson:"recipient,omitempty" json:"recipient,omitempty"`
}

// BookingInfo is the joined read shape for the showInfo endpoints. A dangling
// reference leaves the corresponding info field absent.
type BookingInfo struct {
	Booking
	ClientInfo   *Client   `json:"clientInfo,omitempty"`
	ProviderInfo *Provider `json:"providerInfo,omitempty"`
	ServiceInfo  *Service  `json:"serviceInfo,omitempty"`
}

// BookingCreate is the POST /api/bookings payload.
type BookingCreate struct {
	Client    string     `json:"client"`
	Provider  string     `json:"provider"`
	Service   string     `json:"service"`
	Date      *time.Time `json:"date"`
	Address   string     `json:"address"`
	Payment   string     `json:"payment"`
	Recipient string     `json:"recipient"`
}

func (r BookingCreate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Client, required(refIDRules)...),
		validation.Field(&r.Provider, required(refIDRules)...),
		validation.Field(&r.Service, required(refIDRules)...),
		validation.Field(&r.Date, validation.NotNil.Error("is required")),
		validation.Field(&r.Address, required(refIDRules)...),
		validation.Field(&r.Payment, required(refIDRules)...),
		validation.Field(&r.Recipient, refIDRules...),
	), "client", "provider", "service", "date", "address", "payment", "recipient")
}

func (r BookingCreate) ToBooking() *Booking {
	clientID, _ := primitive.ObjectIDFromHex(r.Client)
	providerID, _ := primitive.ObjectIDFromHex(r.Provider)
	serviceID, _ := primitive.ObjectIDFromHex(r.Service)
	addressID, _ := primitive.ObjectIDFromHex(r.Address)
	paymentID, _ := primitive.ObjectIDFromHex(r.Payment)

	b := &Booking{
		Client:   clientID,
		Provider: providerID,
		Service:  serviceID,
		Date:     *r.Date,
		Address:  addressID,
		Payment:  paymentID,
	}
	if r.Recipient != "" {
		if recipientID, err := primitive.ObjectIDFromHex(r.Recipient); err == nil {
			b.Recipient = &recipientID
		}
	}
	return b
}

// BookingUpdate is the PUT /api/bookings/:id payload.
type BookingUpdate struct {
	Client    *string    `json:"client"`
	Provider  *string    `json:"provider"`
	Service   *string    `json:"service"`
	Date      *time.Time `json:"date"`
	Address   *string    `json:"address"`
	Payment   *string    `json:"payment"`
	Recipient *string    `json:"recipient"`
}

func (r BookingUpdate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Client, optional(refIDRules)...),
		validation.Field(&r.Provider, optional(refIDRules)...),
		validation.Field(&r.Service, optional(refIDRules)...),
		validation.Field(&r.Address, optional(refIDRules)...),
		validation.Field(&r.Payment, optional(refIDRules)...),
		validation.Field(&r.Recipient, optional(refIDRules)...),
	), "client", "provider", "service", "address", "payment", "recipient")
}

func (r BookingUpdate) SetDoc() bson.M {
	set := bson.M{}
	setRef := func(key string, value *string) {
		if value == nil {
			return
		}
		if id, err := primitive.ObjectIDFromHex(*value); err == nil {
			set[key] = id
		}
	}
	setRef("client", r.Client)
	setRef("provider", r.Provider)
	setRef("service", r.Service)
	setRef("address", r.Address)
	setRef("payment", r.Payment)
	setRef("recipient", r.Recipient)
	if r.Date != nil {
		set["date"] = *r.Date
	}
	return set
}
