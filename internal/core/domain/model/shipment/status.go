package shipment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
)

// MaxStatusLength bounds free-form statuses; it matches the width of the status columns.
const MaxStatusLength = 50

// Status is the delivery status of a shipment. The three constants below are the
// recognized lifecycle values; other non-empty strings are accepted as custom
// statuses (e.g. "CUSTOMS_HOLD") without side effects.
type Status string

const (
	// Waiting is the initial status of every new shipment.
	Waiting Status = "WAITING"

	// InTransit means the shipment left the warehouse; entering it notifies the owner.
	InTransit Status = "IN_TRANSIT"

	// Delivered is final for the mark-delivered operation.
	Delivered Status = "DELIVERED"
)

// ParseStatus trims s and checks it is a non-empty status of at most MaxStatusLength
// characters. Case is preserved: "in_transit" is a custom status, not InTransit.
//
// Example:
//
//	status, err := shipment.ParseStatus(" IN_TRANSIT ")
//	// status == shipment.InTransit
func ParseStatus(s string) (Status, error) {
	status := Status(strings.TrimSpace(s))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status is non-empty and not longer than MaxStatusLength.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if n := utf8.RuneCountInString(string(s)); n > MaxStatusLength {
		return errs.NewValueIsOutOfRangeError("status length", n, 1, MaxStatusLength)
	}
	return nil
}

// IsRecognized reports whether s is one of the lifecycle statuses.
func (s Status) IsRecognized() bool {
	switch s {
	case Waiting, InTransit, Delivered:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Deliver transitions IN_TRANSIT to DELIVERED. Any other current status yields a
// StateIsInvalidError.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return "", errs.NewStateIsInvalidErrorWithCause(
			"status",
			s,
			fmt.Errorf("only %s shipments can be marked %s", InTransit, Delivered),
		)
	}
	return Delivered, nil
}
