package location

import "cargotracker/internal/core/domain/model/kernel"

// Well-known locations used for seeding and in tests.
var (
	Hongkong   = mustLocation("CNHKG", "Hongkong")
	Melbourne  = mustLocation("AUMEL", "Melbourne")
	Stockholm  = mustLocation("SESTO", "Stockholm")
	Helsinki   = mustLocation("FIHEL", "Helsinki")
	Chicago    = mustLocation("USCHI", "Chicago")
	Tokyo      = mustLocation("JNTKO", "Tokyo")
	Hamburg    = mustLocation("DEHAM", "Hamburg")
	Shanghai   = mustLocation("CNSHA", "Shanghai")
	Rotterdam  = mustLocation("NLRTM", "Rotterdam")
	Gothenburg = mustLocation("SEGOT", "Gothenburg")
	Hangzhou   = mustLocation("CNHGH", "Hangzhou")
	NewYork    = mustLocation("USNYC", "New York")
	Dallas     = mustLocation("USDAL", "Dallas")
)

// SampleLocations returns every well-known location, keyed by UN location code.
func SampleLocations() map[string]Location {
	all := []Location{
		Hongkong, Melbourne, Stockholm, Helsinki, Chicago, Tokyo,
		Hamburg, Shanghai, Rotterdam, Gothenburg, Hangzhou, NewYork, Dallas,
	}

	byCode := make(map[string]Location, len(all))
	for _, loc := range all {
		byCode[loc.UnLocode().String()] = loc
	}
	return byCode
}

func mustLocation(code, name string) Location {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		panic(err)
	}

	loc, err := NewLocation(unLocode, name)
	if err != nil {
		panic(err)
	}
	return loc
}
