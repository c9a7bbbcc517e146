package repository

import (
	"time"

	"github.com/ShouwangH/garage-demo/internal/models"
)

func seedTime(daysAgo int) time.Time {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, -daysAgo)
}

// SeedListings returns the initial demo listing collection.
func SeedListings() []models.Listing {
	return []models.Listing{
		{
			ID: "listing-001", Title: "2015 Pierce Arrow XT Pumper",
			Year: 2015, Manufacturer: "Pierce",
			Category: models.CategoryFireApparatus, Type: models.VehiclePumper,
			Price: 285000, Mileage: 42000,
			PumpGPM: models.Ptr(1500), TankGallons: models.Ptr(750),
			City: "Houston", State: "TX",
			ImageURL:    "/images/pierce-arrow-xt.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(2),
		},
		{
			ID: "listing-002", Title: "2008 E-One Typhoon Rescue Pumper",
			Year: 2008, Manufacturer: "E-One",
			Category: models.CategoryFireApparatus, Type: models.VehiclePumper,
			Price: 145000, Mileage: 68000,
			PumpGPM: models.Ptr(1250), TankGallons: models.Ptr(1000),
			City: "Tulsa", State: "OK",
			ImageURL:    "/images/eone-typhoon.jpg",
			ListingType: models.ListingAuction, CreatedAt: seedTime(5),
		},
		{
			ID: "listing-003", Title: "2012 Freightliner M2 Type I Ambulance",
			Year: 2012, Manufacturer: "Freightliner",
			Category: models.CategoryAmbulances, Type: models.VehicleAmbulance,
			Price: 58000, Mileage: 94000,
			PumpGPM: nil, TankGallons: nil,
			City: "Columbus", State: "OH",
			ImageURL:    "/images/freightliner-m2-ambulance.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(8),
		},
		{
			ID: "listing-004", Title: "2018 Rosenbauer Commander Tanker",
			Year: 2018, Manufacturer: "Rosenbauer",
			Category: models.CategoryTankers, Type: models.VehicleTanker,
			Price: 310000, Mileage: 21000,
			PumpGPM: models.Ptr(750), TankGallons: models.Ptr(3000),
			City: "Fargo", State: "ND",
			ImageURL:    "/images/rosenbauer-commander.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(11),
		},
		{
			ID: "listing-005", Title: "2005 Seagrave Marauder II Ladder",
			Year: 2005, Manufacturer: "Seagrave",
			Category: models.CategoryFireApparatus, Type: models.VehicleLadder,
			Price: 175000, Mileage: 81000,
			PumpGPM: models.Ptr(1500), TankGallons: models.Ptr(300),
			City: "Newark", State: "NJ",
			ImageURL:    "/images/seagrave-marauder.jpg",
			ListingType: models.ListingAuction, CreatedAt: seedTime(14),
		},
		{
			ID: "listing-006", Title: "2016 KME Panther Heavy Rescue",
			Year: 2016, Manufacturer: "KME",
			Category: models.CategoryRescueTrucks, Type: models.VehicleRescue,
			Price: 225000, Mileage: 35000,
			PumpGPM: nil, TankGallons: nil,
			City: "Scranton", State: "PA",
			ImageURL:    "/images/kme-panther-rescue.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(17),
		},
		{
			ID: "listing-007", Title: "2010 International 7400 Brush Truck",
			Year: 2010, Manufacturer: "International",
			Category: models.CategoryFireApparatus, Type: models.VehicleBrushTruck,
			Price: 72000, Mileage: 56000,
			PumpGPM: models.Ptr(500), TankGallons: models.Ptr(500),
			City: "Boise", State: "ID",
			ImageURL:    "/images/international-brush.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(20),
		},
		{
			ID: "listing-008", Title: "2014 Spartan Gladiator Aerial Platform",
			Year: 2014, Manufacturer: "Spartan",
			Category: models.CategoryFireApparatus, Type: models.VehicleAerial,
			Price: 340000, Mileage: 29000,
			PumpGPM: models.Ptr(2000), TankGallons: models.Ptr(500),
			City: "Sacramento", State: "CA",
			ImageURL:    "/images/spartan-gladiator.jpg",
			ListingType: models.ListingAuction, CreatedAt: seedTime(23),
		},
		{
			ID: "listing-009", Title: "2019 Ferrara Cinder Pumper Tanker",
			Year: 2019, Manufacturer: "Ferrara",
			Category: models.CategoryTankers, Type: models.VehicleTanker,
			Price: 295000, Mileage: 15000,
			PumpGPM: models.Ptr(1000), TankGallons: models.Ptr(2500),
			City: "Baton Rouge", State: "LA",
			ImageURL:    "/images/ferrara-cinder.jpg",
			ListingType: models.ListingBuyNow, CreatedAt: seedTime(26),
		},
		{
			ID: "listing-010", Title: "2011 Sutphen Shield Pumper",
			Year: 2011, Manufacturer: "Sutphen",
			Category: models.CategoryFireApparatus, Type: models.VehiclePumper,
			Price: 132000, Mileage: 74000,
			PumpGPM: models.Ptr(1250), TankGallons: models.Ptr(750),
			City: "Dublin", State: "OH",
			ImageURL:    "/images/sutphen-shield.jpg",
			ListingType: models.ListingAuction, CreatedAt: seedTime(29),
		},
	}
}

// SimulatableListings returns the rotation of template listings used by the
// simulate-new-listing demo operation. IDs and timestamps are assigned at
// simulation time.
func SimulatableListings() []models.Listing {
	return []models.Listing{
		{
			Title: "2020 Pierce Enforcer Pumper",
			Year:  2020, Manufacturer: "Pierce",
			Category: models.CategoryFireApparatus, Type: models.VehiclePumper,
			Price: 320000, Mileage: 9000,
			PumpGPM: models.Ptr(1500), TankGallons: models.Ptr(1000),
			City: "Austin", State: "TX",
			ImageURL:    "/images/pierce-enforcer.jpg",
			ListingType: models.ListingBuyNow,
		},
		{
			Title: "2013 HME Ahrens-Fox Tanker",
			Year:  2013, Manufacturer: "HME",
			Category: models.CategoryTankers, Type: models.VehicleTanker,
			Price: 165000, Mileage: 47000,
			PumpGPM: models.Ptr(500), TankGallons: models.Ptr(2000),
			City: "Wyoming", State: "MI",
			ImageURL:    "/images/hme-ahrens-fox.jpg",
			ListingType: models.ListingAuction,
		},
		{
			Title: "2017 Smeal Sirius Aerial Ladder",
			Year:  2017, Manufacturer: "Smeal",
			Category: models.CategoryFireApparatus, Type: models.VehicleLadder,
			Price: 298000, Mileage: 24000,
			PumpGPM: models.Ptr(1750), TankGallons: models.Ptr(400),
			City: "Snyder", State: "NE",
			ImageURL:    "/images/smeal-sirius.jpg",
			ListingType: models.ListingBuyNow,
		},
		{
			Title: "2015 International TerraStar Type III Ambulance",
			Year:  2015, Manufacturer: "International",
			Category: models.CategoryAmbulances, Type: models.VehicleAmbulance,
			Price: 67000, Mileage: 62000,
			PumpGPM: nil, TankGallons: nil,
			City: "Reno", State: "NV",
			ImageURL:    "/images/international-terrastar.jpg",
			ListingType: models.ListingBuyNow,
		},
	}
}

// DefaultSavedSearches returns the demo saved search seeded on first run.
func DefaultSavedSearches() []models.SavedSearch {
	return []models.SavedSearch{
		{
			ID:        "search-demo-001",
			Name:      "Texas Pierce Pumpers",
			Email:     "chief@demo-fd.org",
			Frequency: models.FrequencyInstant,
			Status:    models.StatusActive,
			CreatedAt: seedTime(30),
			Filters: models.SearchFilters{
				Category:      models.Ptr(models.CategoryFireApparatus),
				Manufacturers: []string{"Pierce"},
				State:         models.Ptr("TX"),
			},
		},
	}
}
