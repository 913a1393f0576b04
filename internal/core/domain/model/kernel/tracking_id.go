package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

// TrackingIDPrefix is prepended to every tracking identifier.
const TrackingIDPrefix = "COORD_"

// trackingIDSuffixLength is the number of hex characters taken from the random UUID.
const trackingIDSuffixLength = 8

var trackingIDPattern = regexp.MustCompile(`^COORD_[0-9A-F]{8}$`)

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID or TrackingIDFromString")

// TrackingID is the human-facing shipment identifier: "COORD_" followed by the first
// eight hex digits of a random (version 4) UUID, upper-cased, e.g. "COORD_3F2A9B1C".
//
// 32 bits of entropy make collisions rare but possible; the store enforces uniqueness
// and callers retry with a fresh identifier on conflict.
type TrackingID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingID generates a fresh random tracking identifier.
//
// Example:
//
//	id := kernel.NewTrackingID()
//	fmt.Println(id) // e.g. COORD_3F2A9B1C
func NewTrackingID() TrackingID {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TrackingID{
		value: TrackingIDPrefix + strings.ToUpper(raw[:trackingIDSuffixLength]),
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingIDFromString parses a stored or user-supplied tracking identifier.
func TrackingIDFromString(s string) (TrackingID, error) {
	if !trackingIDPattern.MatchString(s) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("%q does not match %s", s, trackingIDPattern),
		)
	}
	return TrackingID{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (t TrackingID) String() string {
	return t.value
}

func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}
