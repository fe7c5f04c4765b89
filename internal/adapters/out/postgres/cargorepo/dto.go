// Package cargorepo provides data transfer objects and mapping functions
// for cargo aggregate persistence. The cargo row stores the route
// specification, the flattened delivery snapshot and owns its itinerary
// legs; the snapshot columns double as the read model for the tracking
// and booking queries.
package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
type CargoDTO struct {
	TrackingID      string `gorm:"primaryKey;column:tracking_id"`
	Origin          string
	OriginName      string
	Destination     string
	DestinationName string
	ArrivalDeadline time.Time
	Delivery        DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Legs            []LegDTO    `gorm:"foreignKey:CargoTrackingID;references:TrackingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cargo entities.
// Overrides GORM's default naming convention to use "cargos".
func (CargoDTO) TableName() string {
	return "cargos"
}

// DeliveryDTO represents the flattened delivery snapshot embedded in the
// cargo table. NextEventType zero means no expected activity.
type DeliveryDTO struct {
	TransportStatus       int
	RoutingStatus         int
	Misdirected           bool
	UnloadedAtDestination bool
	LastKnownLocation     *string
	LastKnownLocationName *string
	CurrentVoyageNumber   *string
	Eta                   *time.Time
	NextEventType         int
	NextLocation          *string
	NextLocationName      *string
	NextVoyageNumber      *string
	CalculatedAt          time.Time
}

// LegDTO represents one leg of a cargo's itinerary. LegIndex preserves the
// leg order; the voyage is stored by number and resolved back on load.
type LegDTO struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	CargoTrackingID    string `gorm:"index"`
	LegIndex           int
	VoyageNumber       string
	LoadLocation       string
	LoadLocationName   string
	UnloadLocation     string
	UnloadLocationName string
	LoadTime           time.Time
	UnloadTime         time.Time
}

// TableName specifies the database table name for itinerary legs.
func (LegDTO) TableName() string {
	return "legs"
}

// fromDomain converts a cargo aggregate to its database representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	routeSpecification := aggregate.RouteSpecification()

	dto := CargoDTO{
		TrackingID:      aggregate.TrackingID().String(),
		Origin:          routeSpecification.Origin().UnLocode().String(),
		OriginName:      routeSpecification.Origin().Name(),
		Destination:     routeSpecification.Destination().UnLocode().String(),
		DestinationName: routeSpecification.Destination().Name(),
		ArrivalDeadline: routeSpecification.ArrivalDeadline(),
		Delivery:        deliveryFromDomain(aggregate.Delivery()),
	}

	if itinerary := aggregate.Itinerary(); itinerary != nil {
		for i, leg := range itinerary.Legs() {
			dto.Legs = append(dto.Legs, LegDTO{
				CargoTrackingID:    dto.TrackingID,
				LegIndex:           i,
				VoyageNumber:       leg.Voyage().Number().String(),
				LoadLocation:       leg.LoadLocation().UnLocode().String(),
				LoadLocationName:   leg.LoadLocation().Name(),
				UnloadLocation:     leg.UnloadLocation().UnLocode().String(),
				UnloadLocationName: leg.UnloadLocation().Name(),
				LoadTime:           leg.LoadTime(),
				UnloadTime:         leg.UnloadTime(),
			})
		}
	}

	return dto
}

func deliveryFromDomain(delivery cargo.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		TransportStatus:       int(delivery.TransportStatus()),
		RoutingStatus:         int(delivery.RoutingStatus()),
		Misdirected:           delivery.IsMisdirected(),
		UnloadedAtDestination: delivery.IsUnloadedAtDestination(),
		Eta:                   delivery.EstimatedTimeOfArrival(),
		CalculatedAt:          delivery.CalculatedAt(),
	}

	if loc := delivery.LastKnownLocation(); loc != nil {
		code := loc.UnLocode().String()
		name := loc.Name()
		dto.LastKnownLocation = &code
		dto.LastKnownLocationName = &name
	}

	if voy := delivery.CurrentVoyage(); voy != nil {
		number := voy.Number().String()
		dto.CurrentVoyageNumber = &number
	}

	if activity := delivery.NextExpectedActivity(); !activity.IsNone() {
		code := activity.Location().UnLocode().String()
		name := activity.Location().Name()
		dto.NextEventType = int(activity.Type())
		dto.NextLocation = &code
		dto.NextLocationName = &name

		if voy := activity.Voyage(); voy != nil {
			number := voy.Number().String()
			dto.NextVoyageNumber = &number
		}
	}

	return dto
}

// routeSpecificationToDomain rebuilds the delivery contract from its columns.
func routeSpecificationToDomain(dto CargoDTO) (cargo.RouteSpecification, error) {
	origin, err := locationFromColumns(dto.Origin, dto.OriginName)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	destination, err := locationFromColumns(dto.Destination, dto.DestinationName)
	if err != nil {
		return cargo.RouteSpecification{}, err
	}

	return cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
}

func locationFromColumns(code, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(unLocode, name)
}
