package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func validClientCreate() ClientCreate {
	return ClientCreate{
		Email:     "Jane.Doe@example.com",
		Phone:     "5145551234",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestClientCreateValidate(t *testing.T) {
	require.NoError(t, validClientCreate().Validate())
}

func TestClientCreateRequiresEmail(t *testing.T) {
	req := validClientCreate()
	req.Email = ""
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, `"email" is required`, err.Error())
}

func TestClientCreateRejectsMalformedEmail(t *testing.T) {
	req := validClientCreate()
	req.Email = "not-an-email"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, `"email" must be a valid email`, err.Error())
}

func TestClientCreateFirstViolationWins(t *testing.T) {
	req := validClientCreate()
	req.Email = ""
	req.Phone = "123" // also invalid, but email is declared first
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, `"email" is required`, err.Error())
}

func TestClientCreatePhoneMustBeTenDigits(t *testing.T) {
	for _, phone := range []string{"123", "51455512345", "514555123a"} {
		req := validClientCreate()
		req.Phone = phone
		err := req.Validate()
		require.Error(t, err, phone)
		assert.Equal(t, `"phone" must be exactly 10 digits`, err.Error())
	}
}

func TestClientCreateGenderEnum(t *testing.T) {
	req := validClientCreate()
	req.Gender = "unknown"
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, `"gender" must be one of male, female, other`, err.Error())

	req.Gender = "female"
	require.NoError(t, req.Validate())
}

func TestClientCreateDateOfBirthMustBePast(t *testing.T) {
	req := validClientCreate()
	req.DateOfBirth = timePtr(time.Now().Add(24 * time.Hour))
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, `"dateOfBirth" must be before the current date`, err.Error())

	req.DateOfBirth = timePtr(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, req.Validate())
}

func TestClientCreateValidatesNestedAddresses(t *testing.T) {
	req := validClientCreate()
	req.Address = []AddressPayload{{
		StreetNumber: intPtr(10),
		StreetName:   "Main St",
		City:         "Montreal",
		Province:     "qc", // must be uppercase
		Country:      "Canada",
		PostalCode:   "H1H1H1",
	}}
	require.Error(t, req.Validate())
}

func TestClientCreateToClientNormalizesEmail(t *testing.T) {
	req := validClientCreate()
	req.Email = "  Jane.Doe@Example.COM "
	client := req.ToClient()
	assert.Equal(t, "jane.doe@example.com", client.Email)
	assert.NotNil(t, client.Address)
	assert.NotNil(t, client.Payment)
	assert.NotNil(t, client.Recipient)
}

func TestClientCreateToClientAssignsNestedIDs(t *testing.T) {
	req := validClientCreate()
	req.Address = []AddressPayload{{
		StreetNumber: intPtr(10),
		StreetName:   "Main St",
		City:         "Montreal",
		Province:     "QC",
		Country:      "Canada",
		PostalCode:   "H1H1H1",
	}}
	client := req.ToClient()
	require.Len(t, client.Address, 1)
	assert.False(t, client.Address[0].ID.IsZero())
	assert.Equal(t, 10, client.Address[0].StreetNumber)
}

func TestAddressPayloadStreetNumberZeroIsValid(t *testing.T) {
	p := AddressPayload{
		StreetNumber: intPtr(0),
		StreetName:   "Main St",
		City:         "Montreal",
		Province:     "QC",
		Country:      "Canada",
		PostalCode:   "H1H1H1",
	}
	require.NoError(t, p.Validate())
}

func TestAddressPayloadRequiresStreetNumber(t *testing.T) {
	p := AddressPayload{
		StreetName: "Main St",
		City:       "Montreal",
		Province:   "QC",
		Country:    "Canada",
		PostalCode: "H1H1H1",
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, `"streetNumber" is required`, err.Error())
}

func TestAddressPayloadPostalCodePattern(t *testing.T) {
	p := AddressPayload{
		StreetNumber: intPtr(10),
		StreetName:   "Main St",
		City:         "Montreal",
		Province:     "QC",
		Country:      "Canada",
		PostalCode:   "12345",
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, `"postalCode" must match the pattern A1A1A1`, err.Error())
}

func TestPaymentPayloadValidate(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	p := PaymentPayload{
		PaymentMethod:  "visa",
		CardNumber:     "4111111111111111",
		ExpirationDate: timePtr(exp),
		CVV:            "123",
	}
	require.NoError(t, p.Validate())

	p.PaymentMethod = "amex"
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, `"paymentMethod" must be one of visa, mastercard`, err.Error())

	p.PaymentMethod = "mastercard"
	p.CardNumber = "1234"
	err = p.Validate()
	require.Error(t, err)
	assert.Equal(t, `"cardNumber" must be exactly 16 digits`, err.Error())
}

func TestRecipientPayloadValidate(t *testing.T) {
	p := RecipientPayload{
		FirstName:    "Sam",
		LastName:     "Doe",
		Relationship: "family",
	}
	require.NoError(t, p.Validate())

	p.Relationship = "coworker"
	err := p.Validate()
	require.Error(t, err)
	assert.Equal(t, `"relationship" must be one of family, friend, partner, other`, err.Error())
}

func TestAddressAddRejectsEmptyList(t *testing.T) {
	err := AddressAdd{}.Validate()
	require.Error(t, err)
	assert.Equal(t, `"address" is required`, err.Error())
}

func TestClientUpdateAllFieldsOptional(t *testing.T) {
	require.NoError(t, ClientUpdate{}.Validate())
	assert.Empty(t, ClientUpdate{}.SetDoc())
}

func TestClientUpdateRejectsExplicitlyEmptyEmail(t *testing.T) {
	err := ClientUpdate{Email: strPtr("")}.Validate()
	require.Error(t, err)
	assert.Equal(t, `"email" cannot be empty`, err.Error())
}

func TestClientUpdateSetDocKeepsOnlyProvidedFields(t *testing.T) {
	set := ClientUpdate{
		Email:     strPtr(" New@Example.com"),
		FirstName: strPtr("Janet"),
	}.SetDoc()
	assert.Equal(t, "new@example.com", set["email"])
	assert.Equal(t, "Janet", set["firstName"])
	assert.NotContains(t, set, "phone")
	assert.NotContains(t, set, "lastName")
}
