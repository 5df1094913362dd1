package kernel

import (
	"errors"
	"strings"

	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not built by NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// ValueMap is a reference-data value as entered on an address form: an optional
// code from the back office and the free-text name shown to the customer.
type ValueMap struct {
	Code *string
	Name string
}

// NewValueMap builds a ValueMap with no code.
func NewValueMap(name string) ValueMap {
	return ValueMap{Name: name}
}

// NewCodedValueMap builds a ValueMap carrying a back-office code.
func NewCodedValueMap(code, name string) ValueMap {
	return ValueMap{Code: &code, Name: name}
}

// IsBlank reports whether the name holds nothing but whitespace.
func (v ValueMap) IsBlank() bool {
	return strings.TrimSpace(v.Name) == ""
}

// Address is a delivery destination. City and quarter names are free text; they are
// matched against the reference tables case- and diacritic-insensitively.
type Address struct { //nolint:recvcheck //using for validation
	street     ValueMap
	quarter    ValueMap
	city       ValueMap
	region     ValueMap
	country    ValueMap
	postalCode *int

	guard guard.ConstructorGuard
}

// NewAddress validates and builds an Address. Only the city is mandatory: a missing
// quarter still prices through the city's default zone.
func NewAddress(street, quarter, city, region, country ValueMap, postalCode *int) (Address, error) {
	addr := Address{
		street:  street,
		quarter: quarter,
		region:  region,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setCity(city), addr.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() ValueMap  { return a.street }
func (a Address) Quarter() ValueMap { return a.quarter }
func (a Address) City() ValueMap    { return a.city }
func (a Address) Region() ValueMap  { return a.region }
func (a Address) Country() ValueMap { return a.country }

// PostalCode returns nil when the address has none.
func (a Address) PostalCode() *int {
	return a.postalCode
}

func (a *Address) setCity(city ValueMap) error {
	if city.IsBlank() {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode *int) error {
	if postalCode != nil && *postalCode < 0 {
		return errs.NewValueIsOutOfRangeError("postalCode", *postalCode, 0, "unbounded")
	}

	a.postalCode = postalCode
	return nil
}
