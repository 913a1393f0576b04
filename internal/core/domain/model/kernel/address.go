package kernel

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// RegionCodeLength is the length of a CLDR region code (ISO 3166-1 alpha-2), e.g. "US".
const RegionCodeLength = 2

// ErrAddressIsNotConstructed is returned when an Address was not built via NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or RestoreAddress constructors")

// Address is a structured postal address in the shape used by address validation
// providers: a region code, locality, administrative area, optional postal code and
// one or more free-form address lines.
//
// Address is an immutable value object. The zero value is invalid.
//
// Example:
//
//	addr, err := kernel.NewAddress("US", "Mountain View", "CA", "94043",
//	    []string{"1600 Amphitheatre Pkwy"})
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	regionCode         string
	locality           string
	administrativeArea string
	postalCode         string
	addressLines       []string
	guard              guard.ConstructorGuard
}

// NewAddress creates an Address from caller input, enforcing:
//   - regionCode is exactly two letters (stored upper-case)
//   - locality and administrativeArea are not blank
//   - at least one non-blank address line
//
// postalCode is optional. Surrounding whitespace is trimmed from every part.
func NewAddress(
	regionCode, locality, administrativeArea, postalCode string,
	addressLines []string,
) (Address, error) {
	a := Address{
		postalCode: strings.TrimSpace(postalCode),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setRegionCode(regionCode),
		a.setLocality(locality),
		a.setAdministrativeArea(administrativeArea),
		a.setAddressLines(addressLines),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// RestoreAddress rebuilds an Address from trusted data (persistence, a provider's
// normalized response) without applying the input rules of NewAddress. Providers may
// omit parts such as the administrative area for some regions.
func RestoreAddress(
	regionCode, locality, administrativeArea, postalCode string,
	addressLines []string,
) Address {
	return Address{
		regionCode:         regionCode,
		locality:           locality,
		administrativeArea: administrativeArea,
		postalCode:         postalCode,
		addressLines:       slices.Clone(addressLines),
		guard:              guard.NewConstructorGuard(),
	}
}

// Validate reports whether the address was created through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) RegionCode() string {
	return a.regionCode
}

func (a Address) Locality() string {
	return a.locality
}

func (a Address) AdministrativeArea() string {
	return a.administrativeArea
}

// PostalCode returns the postal code or "" when none was supplied.
func (a Address) PostalCode() string {
	return a.postalCode
}

// AddressLines returns a copy of the free-form address lines.
func (a Address) AddressLines() []string {
	return slices.Clone(a.addressLines)
}

// IsEqual compares two addresses part by part.
func (a Address) IsEqual(other Address) bool {
	return a.regionCode == other.regionCode &&
		a.locality == other.locality &&
		a.administrativeArea == other.administrativeArea &&
		a.postalCode == other.postalCode &&
		slices.Equal(a.addressLines, other.addressLines)
}

// String renders the address on one line, e.g. "1600 Amphitheatre Pkwy, Mountain View, CA 94043, US".
func (a Address) String() string {
	parts := make([]string, 0, len(a.addressLines)+3)
	parts = append(parts, a.addressLines...)
	parts = append(parts, a.locality)
	area := strings.TrimSpace(a.administrativeArea + " " + a.postalCode)
	if area != "" {
		parts = append(parts, area)
	}
	parts = append(parts, a.regionCode)
	return strings.Join(parts, ", ")
}

func (a *Address) setRegionCode(regionCode string) error {
	regionCode = strings.ToUpper(strings.TrimSpace(regionCode))
	if regionCode == "" {
		return errs.NewValueIsRequiredError("regionCode")
	}
	if len(regionCode) != RegionCodeLength || !isASCIILetters(regionCode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"regionCode",
			fmt.Errorf("%q is not a two-letter region code", regionCode),
		)
	}
	a.regionCode = regionCode
	return nil
}

func (a *Address) setLocality(locality string) error {
	locality = strings.TrimSpace(locality)
	if locality == "" {
		return errs.NewValueIsRequiredError("locality")
	}
	a.locality = locality
	return nil
}

func (a *Address) setAdministrativeArea(area string) error {
	area = strings.TrimSpace(area)
	if area == "" {
		return errs.NewValueIsRequiredError("administrativeArea")
	}
	a.administrativeArea = area
	return nil
}

func (a *Address) setAddressLines(lines []string) error {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	if len(cleaned) == 0 {
		return errs.NewValueIsRequiredError("addressLines")
	}
	a.addressLines = cleaned
	return nil
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
