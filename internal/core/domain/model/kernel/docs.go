// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - Address: a structured postal address as accepted from callers and returned,
//     normalized, by the address validation provider
//   - TrackingID: the "COORD_XXXXXXXX" identifier handed out to customers
//
// Both are immutable and carry a guard.ConstructorGuard so that zero values fail
// validation. Constructors enforce input rules; Restore* and *FromString variants are
// used when rebuilding values from persistence or trusted providers.
package kernel
