package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// AddressVerdict is the outcome of validating an address with the provider.
type AddressVerdict struct {
	// IsValid is true when the provider considers the address complete.
	IsValid bool

	// Normalized is the provider's corrected address, nil when it returned none.
	Normalized *kernel.Address
}

// AddressValidator checks destination addresses against an external provider.
// Implementations bound each call with their own timeout and return an
// errs.UpstreamFailureError when the provider cannot be reached or answers with an error.
type AddressValidator interface {
	Validate(ctx context.Context, address kernel.Address) (AddressVerdict, error)
}
