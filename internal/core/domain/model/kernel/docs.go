// Package kernel provides the shared identity primitives of the cargo
// tracking domain.
//
// The package includes:
//   - TrackingID: the opaque, globally unique identity of a cargo aggregate
//   - UnLocode: a United Nations location code identifying a port or terminal
//
// Both are immutable, constructor-guarded value objects. Their zero values are
// invalid and fail Validate, which forces construction through the provided
// factory functions and keeps domain objects in a valid state.
package kernel
