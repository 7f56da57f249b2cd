package helper

import (
	"testing"
	"time"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory sqlite: mỗi connection là một DB riêng nên chỉ giữ 1 conn
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) model.User {
	t.Helper()
	user := model.User{
		Username:    username,
		Password:    "not-a-real-hash",
		Role:        role,
		FullName:    "Test " + username,
		PhoneNumber: "0788000000",
		Age:         25,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestService(t *testing.T, db *gorm.DB, name, category string, price float64, capacity int, isAddOn bool) model.Service {
	t.Helper()
	service := model.Service{
		Name:        name,
		Slug:        GenerateUniqueServiceSlug(db, name),
		Category:    category,
		Description: name + " description",
		PriceRwf:    price,
		Size:        "20m²",
		Details:     "details",
		IsAddOn:     isAddOn,
	}
	if capacity > 0 {
		service.MaxCapacity = &capacity
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func createTestPackage(t *testing.T, db *gorm.DB, name string, basePrice float64, durationDays, maxGuests int, customizable bool, services ...model.Service) model.Package {
	t.Helper()
	pkg := model.Package{
		Name:           name,
		Slug:           GenerateUniquePackageSlug(db, name),
		Category:       constants.PACKAGE_WEDDING,
		Description:    name + " description",
		BasePriceRwf:   basePrice,
		DurationDays:   durationDays,
		MaxGuests:      maxGuests,
		IsCustomizable: customizable,
		Services:       services,
	}
	require.NoError(t, db.Omit("Services.*").Create(&pkg).Error)
	if !customizable {
		// gorm bỏ qua zero value với cột có default:true nên phải set lại
		require.NoError(t, db.Model(&pkg).Update("is_customizable", false).Error)
	}
	return pkg
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
