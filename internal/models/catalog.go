package models

// Manufacturers is the known set of fire apparatus manufacturers. Listings
// are not restricted to this set; it drives filter options and seed data.
var Manufacturers = []string{
	"Pierce",
	"E-One",
	"Seagrave",
	"Spartan",
	"KME",
	"Ferrara",
	"Rosenbauer",
	"Sutphen",
	"Smeal",
	"HME",
	"Freightliner",
	"International",
}

// Categories lists every valid listing category.
var Categories = []Category{
	CategoryFireApparatus,
	CategoryAmbulances,
	CategoryRescueTrucks,
	CategoryTankers,
}

// VehicleTypes lists every valid vehicle subtype.
var VehicleTypes = []VehicleType{
	VehiclePumper,
	VehicleTanker,
	VehicleAerial,
	VehicleRescue,
	VehicleAmbulance,
	VehicleBrushTruck,
	VehicleLadder,
}

// Range describes the bounds for a numeric filter dimension, used for UI
// hints and seed-data sanity.
type Range struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// FilterRanges holds the advertised bounds per numeric filter dimension.
var FilterRanges = map[string]Range{
	"price":       {Min: 0, Max: 350000, Step: 5000},
	"year":        {Min: 1990, Max: 2026, Step: 1},
	"mileage":     {Min: 0, Max: 200000, Step: 5000},
	"pumpGPM":     {Min: 0, Max: 2000, Step: 250},
	"tankGallons": {Min: 0, Max: 3000, Step: 250},
}

// USStates maps state abbreviations to full names.
var USStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

// StateName returns the full name for a state abbreviation, or the
// abbreviation itself when unknown.
func StateName(abbreviation string) string {
	if name, ok := USStates[abbreviation]; ok {
		return name
	}
	return abbreviation
}
