package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field patterns shared by every entity validator.
var (
	emailPattern      = regexp.MustCompile(`^[\w-\.]+@([\w-]+\.)+[\w-]{2,4}$`)
	phonePattern      = regexp.MustCompile(`^[0-9]{10}$`)
	provincePattern   = regexp.MustCompile(`^[A-Z]{2}$`)
	postalCodePattern = regexp.MustCompile(`^[A-Z][0-9][A-Z][0-9][A-Z][0-9]$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
	refIDPattern      = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// Named rule sets, one per field class. Create-time validators wrap these with
// required(...); update-time validators use them through optional(...), which
// keeps the constraint but lets the field be absent.
var (
	emailRules = []validation.Rule{
		validation.Match(emailPattern).Error("must be a valid email"),
		validation.Length(1, 50),
	}
	phoneRules      = []validation.Rule{validation.Match(phonePattern).Error("must be exactly 10 digits")}
	nameRules       = []validation.Rule{validation.Length(1, 50)}
	provinceRules   = []validation.Rule{validation.Match(provincePattern).Error("must be 2 uppercase letters")}
	postalCodeRules = []validation.Rule{validation.Match(postalCodePattern).Error("must match the pattern A1A1A1")}
	cardNumberRules = []validation.Rule{validation.Match(cardNumberPattern).Error("must be exactly 16 digits")}
	cvvRules        = []validation.Rule{validation.Match(cvvPattern).Error("must be 3 or 4 digits")}
	refIDRules      = []validation.Rule{validation.Match(refIDPattern).Error("must be a 24-character hex id")}
	bioRules        = []validation.Rule{validation.Length(1, 500)}
	notesRules      = []validation.Rule{validation.Length(0, 500)}

	genderRule        = validation.In("male", "female", "other").Error("must be one of male, female, other")
	paymentMethodRule = validation.In("visa", "mastercard").Error("must be one of visa, mastercard")
	relationshipRule  = validation.In("family", "friend", "partner", "other").Error("must be one of family, friend, partner, other")

	hourRules = []validation.Rule{
		validation.Min(0).Error("must be no less than 0"),
		validation.Max(24).Error("must be no greater than 24"),
	}

	dateOfBirthRule = validation.By(beforeNow)
)

// beforeNow accepts only dates strictly in the past. Zero and absent values
// pass; presence is enforced separately where a date is required.
func beforeNow(value interface{}) error {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil
		}
		t = *v
	default:
		return nil
	}
	if t.IsZero() {
		return nil
	}
	if !t.Before(time.Now()) {
		return errors.New("must be before the current date")
	}
	return nil
}

// required marks a rule set mandatory for create-style operations.
func required(rules []validation.Rule) []validation.Rule {
	return append([]validation.Rule{validation.Required.Error("is required")}, rules...)
}

// optional keeps the constraints of a rule set but allows the field to be
// absent; an explicitly empty value still fails.
func optional(rules []validation.Rule) []validation.Rule {
	return append([]validation.Rule{validation.NilOrNotEmpty.Error("cannot be empty")}, rules...)
}

// firstViolation collapses a validator error set to the earliest violated
// field in declaration order. Responses carry a single constraint message, and
// required-field checks on earlier fields win over format checks on later ones.
func firstViolation(err error, order ...string) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	for _, field := range order {
		if fieldErr, ok := errs[field]; ok {
			return fmt.Errorf("%q %s", field, strings.TrimSuffix(fieldErr.Error(), "."))
		}
	}
	return err
}

// normalizeEmail folds an address the way it is persisted.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
