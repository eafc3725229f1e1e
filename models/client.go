package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a nested element owned by a client or provider document. Its id
// is unique within the parent only and is used to target updates and removals.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UnitNumber   *int               `bson:"unitNumber,omitempty" json:"unitNumber,omitempty"`
	StreetNumber int                `bson:"streetNumber" json:"streetNumber"`
	StreetName   string             `bson:"streetName" json:"streetName"`
	City         string             `bson:"city" json:"city"`
	Province     string             `bson:"province" json:"province"`
	Country      string             `bson:"country" json:"country"`
	PostalCode   string             `bson:"postalCode" json:"postalCode"`
}

// Payment is a stored card owned by a client. Card data is stored only, never
// charged.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	CardNumber     string             `bson:"cardNumber" json:"cardNumber"`
	ExpirationDate time.Time          `bson:"expirationDate" json:"expirationDate"`
	CVV            string             `bson:"cvv" json:"cvv"`
}

// Recipient is a person a client can book services for.
type Recipient struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName         string             `bson:"firstName" json:"firstName"`
	LastName          string             `bson:"lastName" json:"lastName"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Relationship      string             `bson:"relationship" json:"relationship"`
	Gender            string             `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth       *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	MedicalConditions string             `bson:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
}

// Client is the client document. Email is unique across clients.
type Client struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FirstName         string             `bson:"firstName" json:"firstName"`
	LastName          string             `bson:"lastName" json:"lastName"`
	Gender            string             `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth       *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	MedicalConditions string             `bson:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
	Address           []Address          `bson:"address" json:"address"`
	Payment           []Payment          `bson:"payment" json:"payment"`
	Recipient         []Recipient        `bson:"recipient" json:"recipient"`
}

// AddressPayload is the element shape accepted by create and by the nested
// add/update endpoints.
type AddressPayload struct {
	UnitNumber   *int   `json:"unitNumber"`
	StreetNumber *int   `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

func (p AddressPayload) Validate() error {
	return firstViolation(validation.ValidateStruct(&p,
		validation.Field(&p.StreetNumber, validation.NotNil.Error("is required")),
		validation.Field(&p.StreetName, validation.Required.Error("is required")),
		validation.Field(&p.City, validation.Required.Error("is required")),
		validation.Field(&p.Province, required(provinceRules)...),
		validation.Field(&p.Country, validation.Required.Error("is required")),
		validation.Field(&p.PostalCode, required(postalCodeRules)...),
	), "streetNumber", "streetName", "city", "province", "country", "postalCode")
}

// ToAddress converts a validated payload into a document element with a fresh
// nested id.
func (p AddressPayload) ToAddress() Address {
	return Address{
		ID:           primitive.NewObjectID(),
		UnitNumber:   p.UnitNumber,
		StreetNumber: *p.StreetNumber,
		StreetName:   strings.TrimSpace(p.StreetName),
		City:         strings.TrimSpace(p.City),
		Province:     strings.TrimSpace(p.Province),
		Country:      strings.TrimSpace(p.Country),
		PostalCode:   strings.TrimSpace(p.PostalCode),
	}
}

// SetDoc is the in-place update for one nested address element. Keys are
// relative to the element; the adapter prefixes the positional path.
func (p AddressPayload) SetDoc() bson.M {
	doc := bson.M{
		"streetNumber": *p.StreetNumber,
		"streetName":   strings.TrimSpace(p.StreetName),
		"city":         strings.TrimSpace(p.City),
		"province":     strings.TrimSpace(p.Province),
		"country":      strings.TrimSpace(p.Country),
		"postalCode":   strings.TrimSpace(p.PostalCode),
	}
	if p.UnitNumber != nil {
		doc["unitNumber"] = *p.UnitNumber
	}
	return doc
}

// PaymentPayload is the element shape for client payments.
type PaymentPayload struct {
	PaymentMethod  string     `json:"paymentMethod"`
	CardNumber     string     `json:"cardNumber"`
	ExpirationDate *time.Time `json:"expirationDate"`
	CVV            string     `json:"cvv"`
}

func (p PaymentPayload) Validate() error {
	return firstViolation(validation.ValidateStruct(&p,
		validation.Field(&p.PaymentMethod, validation.Required.Error("is required"), paymentMethodRule),
		validation.Field(&p.CardNumber, required(cardNumberRules)...),
		validation.Field(&p.ExpirationDate, validation.NotNil.Error("is required")),
		validation.Field(&p.CVV, required(cvvRules)...),
	), "paymentMethod", "cardNumber", "expirationDate", "cvv")
}

func (p PaymentPayload) ToPayment() Payment {
	return Payment{
		ID:             primitive.NewObjectID(),
		PaymentMethod:  p.PaymentMethod,
		CardNumber:     p.CardNumber,
		ExpirationDate: *p.ExpirationDate,
		CVV:            p.CVV,
	}
}

func (p PaymentPayload) SetDoc() bson.M {
	return bson.M{
		"paymentMethod":  p.PaymentMethod,
		"cardNumber":     p.CardNumber,
		"expirationDate": *p.ExpirationDate,
		"cvv":            p.CVV,
	}
}

// RecipientPayload is the element shape for client recipients.
type RecipientPayload struct {
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Relationship      string     `json:"relationship"`
	Gender            string     `json:"gender"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	MedicalConditions string     `json:"medicalConditions"`
}

func (p RecipientPayload) Validate() error {
	return firstViolation(validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, required(nameRules)...),
		validation.Field(&p.LastName, required(nameRules)...),
		validation.Field(&p.Email, emailRules...),
		validation.Field(&p.Phone, phoneRules...),
		validation.Field(&p.Relationship, validation.Required.Error("is required"), relationshipRule),
		validation.Field(&p.Gender, genderRule),
		validation.Field(&p.DateOfBirth, dateOfBirthRule),
		validation.Field(&p.MedicalConditions, notesRules...),
	), "firstName", "lastName", "email", "phone", "relationship", "gender", "dateOfBirth", "medicalConditions")
}

func (p RecipientPayload) ToRecipient() Recipient {
	return Recipient{
		ID:                primitive.NewObjectID(),
		FirstName:         strings.TrimSpace(p.FirstName),
		LastName:          strings.TrimSpace(p.LastName),
		Email:             normalizeEmail(p.Email),
		Phone:             strings.TrimSpace(p.Phone),
		Relationship:      p.Relationship,
		Gender:            p.Gender,
		DateOfBirth:       p.DateOfBirth,
		MedicalConditions: strings.TrimSpace(p.MedicalConditions),
	}
}

func (p RecipientPayload) SetDoc() bson.M {
	doc := bson.M{
		"firstName":    strings.TrimSpace(p.FirstName),
		"lastName":     strings.TrimSpace(p.LastName),
		"relationship": p.Relationship,
	}
	if p.Email != "" {
		doc["email"] = normalizeEmail(p.Email)
	}
	if p.Phone != "" {
		doc["phone"] = strings.TrimSpace(p.Phone)
	}
	if p.Gender != "" {
		doc["gender"] = p.Gender
	}
	if p.DateOfBirth != nil {
		doc["dateOfBirth"] = *p.DateOfBirth
	}
	if p.MedicalConditions != "" {
		doc["medicalConditions"] = strings.TrimSpace(p.MedicalConditions)
	}
	return doc
}

// AddressAdd wraps the elements appended by PUT .../addresses/add. The wrapper
// is required and must not be empty.
type AddressAdd struct {
	Address []AddressPayload `json:"address"`
}

func (r AddressAdd) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required.Error("is required"), validation.Length(1, 0)),
	), "address")
}

// PaymentAdd wraps the elements appended by PUT .../payments/add.
type PaymentAdd struct {
	Payment []PaymentPayload `json:"payment"`
}

func (r PaymentAdd) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Payment, validation.Required.Error("is required"), validation.Length(1, 0)),
	), "payment")
}

// RecipientAdd wraps the elements appended by PUT .../recipients/add.
type RecipientAdd struct {
	Recipient []RecipientPayload `json:"recipient"`
}

func (r RecipientAdd) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required.Error("is required"), validation.Length(1, 0)),
	), "recipient")
}

// ClientCreate is the POST /api/clients payload.
type ClientCreate struct {
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Gender            string             `json:"gender"`
	DateOfBirth       *time.Time         `json:"dateOfBirth"`
	MedicalConditions string             `json:"medicalConditions"`
	Address           []AddressPayload   `json:"address"`
	Payment           []PaymentPayload   `json:"payment"`
	Recipient         []RecipientPayload `json:"recipient"`
}

func (r ClientCreate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Email, required(emailRules)...),
		validation.Field(&r.Phone, required(phoneRules)...),
		validation.Field(&r.FirstName, required(nameRules)...),
		validation.Field(&r.LastName, required(nameRules)...),
		validation.Field(&r.Gender, genderRule),
		validation.Field(&r.DateOfBirth, dateOfBirthRule),
		validation.Field(&r.MedicalConditions, notesRules...),
		validation.Field(&r.Address),
		validation.Field(&r.Payment),
		validation.Field(&r.Recipient),
	), "email", "phone", "firstName", "lastName", "gender", "dateOfBirth",
		"medicalConditions", "address", "payment", "recipient")
}

// ToClient builds the document to insert, assigning nested element ids and
// normalizing the email.
func (r ClientCreate) ToClient() *Client {
	c := &Client{
		Email:             normalizeEmail(r.Email),
		Phone:             strings.TrimSpace(r.Phone),
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		Gender:            r.Gender,
		DateOfBirth:       r.DateOfBirth,
		MedicalConditions: strings.TrimSpace(r.MedicalConditions),
		Address:           make([]Address, 0, len(r.Address)),
		Payment:           make([]Payment, 0, len(r.Payment)),
		Recipient:         make([]Recipient, 0, len(r.Recipient)),
	}
	for _, a := range r.Address {
		c.Address = append(c.Address, a.ToAddress())
	}
	for _, p := range r.Payment {
		c.Payment = append(c.Payment, p.ToPayment())
	}
	for _, rec := range r.Recipient {
		c.Recipient = append(c.Recipient, rec.ToRecipient())
	}
	return c
}

// ClientUpdate is the PUT /api/clients/:id payload. Every field is optional;
// present fields must still satisfy their create-time constraint. Nested
// collections are managed through their own add/update/remove endpoints.
type ClientUpdate struct {
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	FirstName         *string    `json:"firstName"`
	LastName          *string    `json:"lastName"`
	Gender            *string    `json:"gender"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	MedicalConditions *string    `json:"medicalConditions"`
}

func (r ClientUpdate) Validate() error {
	return firstViolation(validation.ValidateStruct(&r,
		validation.Field(&r.Email, optional(emailRules)...),
		validation.Field(&r.Phone, optional(phoneRules)...),
		validation.Field(&r.FirstName, optional(nameRules)...),
		validation.Field(&r.LastName, optional(nameRules)...),
		validation.Field(&r.Gender, genderRule),
		validation.Field(&r.DateOfBirth, dateOfBirthRule),
		validation.Field(&r.MedicalConditions, notesRules...),
	), "email", "phone", "firstName", "lastName", "gender", "dateOfBirth", "medicalConditions")
}

// SetDoc collects only the provided fields; set semantics leave the rest of
// the document untouched.
func (r ClientUpdate) SetDoc() bson.M {
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
	if r.MedicalConditions != nil {
		set["medicalConditions"] = strings.TrimSpace(*r.MedicalConditions)
	}
	return set
}
