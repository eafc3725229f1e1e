package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HourSlot is one available hour owned by an availability document. Values
// are not deduplicated: the same hour may appear more than once.
type HourSlot struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Hour int                `bson:"hour" json:"hour"`
}

// Availability records the hours a provider is available on a date. The
// provider field is a weak reference; existence is never checked.
type Availability struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Provider       primitive.ObjectID `bson:"provider" json:"provider"`
	Date           *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	AvailableHours []HourSlot         `bson:"availableHours" json:"availableHours"`
}

// AvailabilityInfo is the joined read shape: the provider reference expanded
// into the referenced document when it still exists.
type AvailabilityInfo struct {
	Availability
	ProviderInfo *Provider `json:"providerInfo,omitempty"`
}

// HourPayload is the element shape for nested hour operations.
type HourPayload struct {
	Hour *int `json:"hour"`
}

func (p HourPayload) Validate() error {
	return firstViolation(validation.ValidateStruct(&p,
		validation.Field(&p.Hour, append([]validation.Rule{validation.NotNil.Error("is required")}, hourRules...)...),
	), "hour")
}

func (p HourPayload) ToHourSlot() HourSlot {
	return HourSlot{ID: primitive.NewObjectID(), Hour: *p.Hour}
}

func (p HourPayload) SetDoc() bson.M {
	return bson.M{"hour": *p.Hour}
}

// HourAdd wraps the elements appended by PUT .../hours/add.
type HourAdd struct {
	AvailableHours []HourPayload `json:"availableHours"`
}

func (r HourAdd) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.AvailableHours, validation.Required.Error("is required"), validation.Length(1, 0)),
	), "availableHours")
}

// AvailabilityCreate is the POST /api/availabilities payload.
type AvailabilityCreate struct {
	Provider       string        `json:"provider"`
	Date           *time.Time    `json:"date"`
	AvailableHours []HourPayload `json:"availableHours"`
}

func (r AvailabilityCreate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Provider, required(refIDRules)...),
		validation.Field(&r.Date, validation.NotNil.Error("is required")),
		validation.Field(&r.AvailableHours, validation.NotNil.Error("is required")),
	), "provider", "date", "availableHours")
}

func (r AvailabilityCreate) ToAvailability() *Availability {
	providerID, _ := primitive.ObjectIDFromHex(r.Provider)
	a := &Availability{
		Provider:       providerID,
		Date:           r.Date,
		AvailableHours: make([]HourSlot, 0, len(r.AvailableHours)),
	}
	for _, h := range r.AvailableHours {
		a.AvailableHours = append(a.AvailableHours, h.ToHourSlot())
	}
	return a
}

// AvailabilityUpdate is the PUT /api/availabilities/:id payload. Hours are
// managed through the nested hour endpoints.
type AvailabilityUpdate struct {
	Provider *string    `json:"provider"`
	Date     *time.Time `json:"date"`
}

func (r AvailabilityUpdate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Provider, optional(refIDRules)...),
	), "provider")
}

func (r AvailabilityUpdate) SetDoc() bson.M {
	set := bson.M{}
	if r.Provider != nil {
		if providerID, err := primitive.ObjectIDFromHex(*r.Provider); err == nil {
			set["provider"] = providerID
		}
	}
	if r.Date != nil {
		set["date"] = *r.Date
	}
	return set
}
