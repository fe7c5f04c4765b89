package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/location"
)

// Well-known voyages used for seeding and in tests. The schedules connect
// the sample locations so that routes exist between the usual demo pairs
// (Hongkong to Stockholm, Hamburg to Helsinki).
var (
	V100 = mustVoyage("V100", location.Hongkong,
		movement{location.Tokyo, date(2026, time.March, 3), date(2026, time.March, 5)},
		movement{location.NewYork, date(2026, time.March, 6), date(2026, time.March, 9)},
	)

	V200 = mustVoyage("V200", location.Tokyo,
		movement{location.NewYork, date(2026, time.March, 8), date(2026, time.March, 11)},
		movement{location.Chicago, date(2026, time.March, 12), date(2026, time.March, 14)},
		movement{location.Stockholm, date(2026, time.March, 14), date(2026, time.March, 16)},
	)

	V300 = mustVoyage("V300", location.Tokyo,
		movement{location.Rotterdam, date(2026, time.March, 8), date(2026, time.March, 11)},
		movement{location.Hamburg, date(2026, time.March, 11), date(2026, time.March, 12)},
		movement{location.Melbourne, date(2026, time.March, 14), date(2026, time.March, 18)},
		movement{location.Tokyo, date(2026, time.March, 19), date(2026, time.March, 21)},
	)

	V400 = mustVoyage("V400", location.Hamburg,
		movement{location.Stockholm, date(2026, time.March, 14), date(2026, time.March, 15)},
		movement{location.Helsinki, date(2026, time.March, 15), date(2026, time.March, 16)},
		movement{location.Hamburg, date(2026, time.March, 20), date(2026, time.March, 22)},
	)
)

// SampleVoyages returns every well-known voyage in schedule order.
func SampleVoyages() []Voyage {
	return []Voyage{V100, V200, V300, V400}
}

type movement struct {
	arrival       location.Location
	departureTime time.Time
	arrivalTime   time.Time
}

func mustVoyage(number string, departure location.Location, movements ...movement) Voyage {
	n, err := NewNumber(number)
	if err != nil {
		panic(err)
	}

	builder := NewBuilder(n, departure)
	for _, m := range movements {
		builder.AddMovement(m.arrival, m.departureTime, m.arrivalTime)
	}

	voy, err := builder.Build()
	if err != nil {
		panic(err)
	}
	return voy
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
