// Package cargo contains the cargo aggregate and the delivery derivation
// engine at the heart of the tracking domain.
//
// A Cargo binds a stable TrackingID, the contractual RouteSpecification,
// the planned Itinerary of Legs and a derived Delivery snapshot. The
// snapshot is never mutated independently: every itinerary assignment,
// route change or newly recorded handling event replays the full handling
// history and replaces the snapshot wholesale.
//
// All building blocks are structurally-compared immutable value objects;
// constructing one that violates its invariants fails fast with a
// validation error.
package cargo
