package http

import "time"

// Resource types of the public REST API. Times travel as RFC 3339 strings,
// locations as UN/LOCODEs, voyages by number.

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCargo is the booking request body.
type NewCargo struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// CargoBooked is the booking response body.
type CargoBooked struct {
	TrackingId string `json:"trackingId"`
}

// CargoSummary is one row of the booking overview.
type CargoSummary struct {
	TrackingId      string    `json:"trackingId"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
	TransportStatus string    `json:"transportStatus"`
	RoutingStatus   string    `json:"routingStatus"`
	Misdirected     bool      `json:"misdirected"`
}

// CargoTracking is the public tracking view of one cargo.
type CargoTracking struct {
	TrackingId            string             `json:"trackingId"`
	Origin                string             `json:"origin"`
	Destination           string             `json:"destination"`
	ArrivalDeadline       time.Time          `json:"arrivalDeadline"`
	TransportStatus       string             `json:"transportStatus"`
	RoutingStatus         string             `json:"routingStatus"`
	Misdirected           bool               `json:"misdirected"`
	UnloadedAtDestination bool               `json:"unloadedAtDestination"`
	LastKnownLocation     *string            `json:"lastKnownLocation,omitempty"`
	CurrentVoyage         *string            `json:"currentVoyage,omitempty"`
	Eta                   *time.Time         `json:"eta,omitempty"`
	NextExpectedActivity  *ExpectedActivity  `json:"nextExpectedActivity,omitempty"`
	HandlingEvents        []HandlingActivity `json:"handlingEvents"`
}

// ExpectedActivity describes the next expected handling activity.
type ExpectedActivity struct {
	EventType    string  `json:"eventType"`
	Location     string  `json:"location"`
	VoyageNumber *string `json:"voyageNumber,omitempty"`
}

// HandlingActivity is one entry of a cargo's handling event log.
type HandlingActivity struct {
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// RouteCandidate is one itinerary offered for a cargo.
type RouteCandidate struct {
	Legs []Leg `json:"legs"`
}

// Leg is one leg of an itinerary.
type Leg struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

// NewDestination is the destination change request body.
type NewDestination struct {
	Destination string `json:"destination"`
}

// NewHandlingEvent is the handling report request body.
type NewHandlingEvent struct {
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}
