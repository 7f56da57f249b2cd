package database

import (
	"log"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashOr(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return password
	}
	return string(bytes)
}

func SeedData(db *gorm.DB) {
	users := []model.User{
		{
			Username:    "admin",
			Password:    hashOr("admin123"),
			Role:        constants.ROLE_ADMIN,
			FullName:    "System Administrator",
			PhoneNumber: "+250700000000",
			Age:         30,
			Email:       utils.Ptr("admin@hotel.com"),
			IsActive:    true,
		},
		{
			Username:    "user",
			Password:    hashOr("user123"),
			Role:        constants.ROLE_USER,
			FullName:    "John Doe",
			PhoneNumber: "+250700000001",
			Age:         25,
			Email:       utils.Ptr("user@example.com"),
			IsActive:    true,
		},
	}
	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Username, "error:", err)
		}
	}

	services := []model.Service{
		{
			Name:        "Deluxe Single Room",
			Slug:        "deluxe-single-room",
			Category:    constants.CATEGORY_SINGLE,
			Description: "Comfortable single room with modern amenities",
			PriceRwf:    50000,
			Size:        "18m²",
			Details:     "Queen-size bed, En-suite bathroom, Air conditioning, Free Wi-Fi",
			MaxCapacity: utils.Ptr(1),
		},
		{
			Name:        "Premium Double Room",
			Slug:        "premium-double-room",
			Category:    constants.CATEGORY_DOUBLE,
			Description: "Spacious double room with city view",
			PriceRwf:    80000,
			Size:        "25m²",
			Details:     "King-size bed, En-suite bathroom, Air conditioning, Free Wi-Fi, City view",
			MaxCapacity: utils.Ptr(2),
		},
		{
			Name:        "Executive Suite",
			Slug:        "executive-suite",
			Category:    constants.CATEGORY_SUITE,
			Description: "Luxury suite with separate living area",
			PriceRwf:    150000,
			Size:        "40m²",
			Details:     "King-size bed, Living room, Mini kitchen, Jacuzzi, Free Wi-Fi",
			MaxCapacity: utils.Ptr(2),
		},
		{
			Name:        "Conference Room A",
			Slug:        "conference-room-a",
			Category:    constants.CATEGORY_CONFERENCE,
			Description: "Modern conference room for business meetings",
			PriceRwf:    200000,
			Size:        "100m²",
			Details:     "Projector, Sound system, Air conditioning, Free Wi-Fi, Capacity: 50 people",
			MaxCapacity: utils.Ptr(50),
		},
		{
			Name:        "Spa Access",
			Slug:        "spa-access",
			Category:    constants.CATEGORY_ADD_ON,
			Description: "Full day access to spa facilities",
			PriceRwf:    20000,
			Size:        "",
			Details:     "Sauna, Steam room, Massage (extra charge), Pool access",
			IsAddOn:     true,
		},
		{
			Name:        "Decoration Service",
			Slug:        "decoration-service",
			Category:    constants.CATEGORY_ADD_ON,
			Description: "Event decoration with flowers and lighting",
			PriceRwf:    100000,
			Size:        "",
			Details:     "Fresh flowers, Ambient lighting, Table setup, Custom themes",
			IsAddOn:     true,
		},
		{
			Name:        "Catering Service",
			Slug:        "catering-service",
			Category:    constants.CATEGORY_ADD_ON,
			Description: "Per-guest catering with local and international dishes",
			PriceRwf:    15000,
			Size:        "",
			Details:     "Buffet or plated service, Vegetarian options, Soft drinks included",
			IsAddOn:     true,
		},
	}
	for _, service := range services {
		if err := db.Where(model.Service{Slug: service.Slug}).FirstOrCreate(&service).Error; err != nil {
			log.Println("failed to seed service:", service.Name, "error:", err)
		}
	}

	packages := []model.Package{
		{
			Name:           "Classic Wedding Package",
			Slug:           "classic-wedding-package",
			Category:       constants.PACKAGE_WEDDING,
			Description:    "Full wedding setup with venue and suite for the couple",
			BasePriceRwf:   500000,
			DurationDays:   1,
			MaxGuests:      100,
			IsCustomizable: true,
		},
		{
			Name:           "Business Conference Package",
			Slug:           "business-conference-package",
			Category:       constants.PACKAGE_CONFERENCE,
			Description:    "Conference room with equipment for corporate events",
			BasePriceRwf:   350000,
			DurationDays:   1,
			MaxGuests:      50,
			IsCustomizable: true,
		},
	}
	for _, pkg := range packages {
		if err := db.Where(model.Package{Slug: pkg.Slug}).FirstOrCreate(&pkg).Error; err != nil {
			log.Println("failed to seed package:", pkg.Name, "error:", err)
			continue
		}

		// gói cưới kèm suite, gói hội nghị kèm phòng họp
		var included model.Service
		includedSlug := "executive-suite"
		if pkg.Category == constants.PACKAGE_CONFERENCE {
			includedSlug = "conference-room-a"
		}
		if err := db.Where(model.Service{Slug: includedSlug}).First(&included).Error; err == nil {
			db.Model(&pkg).Association("Services").Append(&included)
		}
	}
}
