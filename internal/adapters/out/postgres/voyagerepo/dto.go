// Package voyagerepo provides data transfer objects and mapping functions
// for voyage persistence. A voyage row owns its ordered carrier movements;
// like locations, voyages are reference data seeded at startup.
package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents the database structure for persisting voyages.
type VoyageDTO struct {
	Number    string               `gorm:"primaryKey"`
	Movements []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;references:Number;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for voyage entities.
// Overrides GORM's default naming convention to use "voyages".
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one movement of a voyage's schedule.
// MovementIndex preserves the schedule order.
type CarrierMovementDTO struct {
	ID                    uint   `gorm:"primaryKey;autoIncrement"`
	VoyageNumber          string `gorm:"index"`
	MovementIndex         int
	DepartureLocation     string
	DepartureLocationName string
	ArrivalLocation       string
	ArrivalLocationName   string
	DepartureTime         time.Time
	ArrivalTime           time.Time
}

// TableName specifies the database table name for carrier movements.
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// fromDomain converts a voyage to its database representation.
func fromDomain(voy voyage.Voyage) VoyageDTO {
	movements := voy.Schedule().CarrierMovements()
	dtos := make([]CarrierMovementDTO, 0, len(movements))
	for i, movement := range movements {
		dtos = append(dtos, CarrierMovementDTO{
			VoyageNumber:          voy.Number().String(),
			MovementIndex:         i,
			DepartureLocation:     movement.DepartureLocation().UnLocode().String(),
			DepartureLocationName: movement.DepartureLocation().Name(),
			ArrivalLocation:       movement.ArrivalLocation().UnLocode().String(),
			ArrivalLocationName:   movement.ArrivalLocation().Name(),
			DepartureTime:         movement.DepartureTime(),
			ArrivalTime:           movement.ArrivalTime(),
		})
	}

	return VoyageDTO{
		Number:    voy.Number().String(),
		Movements: dtos,
	}
}

// toDomain converts a database DTO to a voyage value object.
func toDomain(dto VoyageDTO) (voyage.Voyage, error) {
	number, err := voyage.NewNumber(dto.Number)
	if err != nil {
		return voyage.Voyage{}, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, movementDTO := range dto.Movements {
		departure, depErr := locationFromColumns(movementDTO.DepartureLocation, movementDTO.DepartureLocationName)
		if depErr != nil {
			return voyage.Voyage{}, depErr
		}

		arrival, arrErr := locationFromColumns(movementDTO.ArrivalLocation, movementDTO.ArrivalLocationName)
		if arrErr != nil {
			return voyage.Voyage{}, arrErr
		}

		movement, movErr := voyage.NewCarrierMovement(
			departure, arrival, movementDTO.DepartureTime, movementDTO.ArrivalTime)
		if movErr != nil {
			return voyage.Voyage{}, movErr
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return voyage.Voyage{}, err
	}

	return voyage.NewVoyage(number, schedule)
}

func locationFromColumns(code, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(unLocode, name)
}
