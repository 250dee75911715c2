// Package identity generates synthetic personal records from the locale
// tables in registry. Numbers that look like financial or government
// identifiers are fake by construction.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zarlcorp/phantomid/internal/record"
	"github.com/zarlcorp/phantomid/internal/registry"
)

var (
	// ErrInvalidRange is returned for negative or inverted age bounds.
	ErrInvalidRange = errors.New("invalid age range")

	// ErrInvalidGender is returned for a forced gender other than male/female.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrUnsupportedLocale is registry.ErrUnsupportedLocale.
	ErrUnsupportedLocale = registry.ErrUnsupportedLocale
)

// Gender drives first-name selection.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender matches male/female case-insensitively. Empty input yields "".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// AgeRange bounds the generated age, inclusive on both ends.
type AgeRange struct {
	Min int
	Max int
}

// DefaultAges is used when Options.Ages is nil.
var DefaultAges = AgeRange{Min: 18, Max: 80}

func (a AgeRange) validate() error {
	if a.Min < 0 || a.Max < 0 {
		return fmt.Errorf("%w: bounds must not be negative (%d-%d)", ErrInvalidRange, a.Min, a.Max)
	}
	if a.Min > a.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, a.Min, a.Max)
	}
	return nil
}

// Options select what a single Generate call produces.
type Options struct {
	IncludeFinancial    bool
	IncludeProfessional bool
	IncludeDocuments    bool

	// Ages defaults to DefaultAges when nil.
	Ages *AgeRange

	// Locale overrides the generator default when non-empty.
	Locale string

	// Gender forces a value; empty picks one uniformly.
	Gender string
}

// Documents holds travel and driving document numbers.
type Documents struct {
	PassportNumber string `json:"passport_number"`
	DriverLicense  string `json:"driver_license"`
}

// Financial holds payment data. The card number is not guaranteed to
// pass a Luhn check unless the generator was built WithLuhn(true).
type Financial struct {
	CreditCard       string `json:"credit_card"`
	CreditCardExpiry string `json:"credit_card_expiry"`
	CreditCardCVV    string `json:"credit_card_cvv"`
	BankAccount      string `json:"bank_account"`
}

// Professional holds employment data.
type Professional struct {
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	Website  string `json:"website"`
}

// Identity is one synthetic person. Optional groups are nil when they were
// not requested.
type Identity struct {
	FullName      string        `json:"full_name"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Gender        Gender        `json:"gender"`
	Birthdate     time.Time     `json:"birthdate"`
	Age           int           `json:"age"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	PostalCode    string        `json:"postal_code"`
	Country       string        `json:"country"`
	NationalID    string        `json:"national_id"`
	Documents     *Documents    `json:"documents,omitempty"`
	Financial     *Financial    `json:"financial,omitempty"`
	Professional  *Professional `json:"professional,omitempty"`
	ProfilePicURL string        `json:"profile_pic_url"`
	Locale        string        `json:"locale"`
}

// Columns is the canonical field order for identity records. Records only
// contain the subset that was generated; exports use the full list.
var Columns = []string{
	"full_name", "first_name", "last_name", "gender", "birthdate", "age",
	"username", "email", "phone", "address", "city", "postal_code", "country",
	"national_id",
	"passport_number", "driver_license",
	"credit_card", "credit_card_expiry", "credit_card_cvv", "bank_account",
	"company", "job_title", "website",
	"profile_pic_url", "locale",
}

// Record returns the identity as an ordered mapping with only the fields
// that were generated.
func (id Identity) Record() record.Record {
	b := record.NewBuilder().
		Set("full_name", id.FullName).
		Set("first_name", id.FirstName).
		Set("last_name", id.LastName).
		Set("gender", string(id.Gender)).
		Set("birthdate", id.Birthdate.Format(time.DateOnly)).
		Set("age", id.Age).
		Set("username", id.Username).
		Set("email", id.Email).
		Set("phone", id.Phone).
		Set("address", id.Address).
		Set("city", id.City).
		Set("postal_code", id.PostalCode).
		Set("country", id.Country).
		Set("national_id", id.NationalID)

	if d := id.Documents; d != nil {
		b.Set("passport_number", d.PassportNumber).
			Set("driver_license", d.DriverLicense)
	}

	if f := id.Financial; f != nil {
		b.Set("credit_card", f.CreditCard).
			Set("credit_card_expiry", f.CreditCardExpiry).
			Set("credit_card_cvv", f.CreditCardCVV).
			Set("bank_account", f.BankAccount)
	}

	if p := id.Professional; p != nil {
		b.Set("company", p.Company).
			Set("job_title", p.JobTitle).
			Set("website", p.Website)
	}

	return b.Set("profile_pic_url", id.ProfilePicURL).
		Set("locale", id.Locale).
		Build()
}
