package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider is the provider document. Email is unique across providers.
type Provider struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Addresses   []Address          `bson:"addresses" json:"addresses"`
}

// ProviderAddressAdd wraps the elements appended by PUT .../addresses/add.
// Providers store their collection under "addresses", unlike clients.
type ProviderAddressAdd struct {
	Addresses []AddressPayload `json:"addresses"`
}

func (r ProviderAddressAdd) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Addresses, validation.Required.Error("is required"), validation.Length(1, 0)),
	), "addresses")
}

// ProviderCreate is the POST /api/providers payload.
type ProviderCreate struct {
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	Gender      string           `json:"gender"`
	DateOfBirth *time.Time       `json:"dateOfBirth"`
	Bio         string           `json:"bio"`
	Addresses   []AddressPayload `json:"addresses"`
}

func (r ProviderCreate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Email, required(emailRules)...),
		validation.Field(&r.Phone, required(phoneRules)...),
		validation.Field(&r.FirstName, required(nameRules)...),
		validation.Field(&r.LastName, required(nameRules)...),
		validation.Field(&r.Gender, genderRule),
		validation.Field(&r.DateOfBirth, dateOfBirthRule),
		validation.Field(&r.Bio, bioRules...),
		validation.Field(&r.Addresses),
	), "email", "phone", "firstName", "lastName", "gender", "dateOfBirth", "bio", "addresses")
}

func (r ProviderCreate) ToProvider() *Provider {
	p := &Provider{
		Email:       normalizeEmail(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Gender:      r.Gender,
		DateOfBirth: r.DateOfBirth,
		Bio:         strings.TrimSpace(r.Bio),
		Addresses:   make([]Address, 0, len(r.Addresses)),
	}
	for _, a := range r.Addresses {
		p.Addresses = append(p.Addresses, a.ToAddress())
	}
	return p
}

// ProviderUpdate is the PUT /api/providers/:id payload.
type ProviderUpdate struct {
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	FirstName   *string    `json:"firstName"`
	LastName    *string    `json:"lastName"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Bio         *string    `json:"bio"`
}

func (r ProviderUpdate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Email, optional(emailRules)...),
		validation.Field(&r.Phone, optional(phoneRules)...),
		validation.Field(&r.FirstName, optional(nameRules)...),
		validation.Field(&r.LastName, optional(nameRules)...),
		validation.Field(&r.Gender, genderRule),
		validation.Field(&r.DateOfBirth, dateOfBirthRule),
		validation.Field(&r.Bio, optional(bioRules)...),
	), "email", "phone", "firstName", "lastName", "gender", "dateOfBirth", "bio")
}

func (r ProviderUpdate) SetDoc() bson.M {
	set := bson.M{}
	if r.Email != nil {
		set["email"] = normalizeEmail(*r.Email)
	}
	if r.Phone != nil {
		set["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.FirstName != nil {
		set["firstName"] = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		set["lastName"] = strings.TrimSpace(*r.LastName)
	}
	if r.Gender != nil {
		set["gender"] = *r.Gender
	}
	if r.DateOfBirth != nil {
		set["dateOfBirth"] = *r.DateOfBirth
	}
	if r.Bio != nil {
		set["bio"] = strings.TrimSpace(*r.Bio)
	}
	return set
}
