// Package services contains domain services of the cargo tracking core:
// operations that belong to the domain but do not naturally live on a
// single aggregate.
//
//   - HandlingEventFactory validates raw handling reports from the intake
//     process into immutable handling events.
//   - RoutingService is the contract for the external candidate itinerary
//     supplier; the core only validates and consumes chosen candidates,
//     it never searches for routes itself.
package services
