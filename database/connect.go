package database

import (
	"fmt"
	"strconv"

	"hotel_booking/config"
	"hotel_booking/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error

	switch config.ConfigDefault("DB_DRIVER", "postgres") {
	case "sqlite":
		path := config.ConfigDefault("DB_PATH", "hotel_booking.db")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		p := config.Config("DB_PORT")
		port, perr := strconv.ParseUint(p, 10, 32)
		if perr != nil {
			panic("failed to parse database port")
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.User{},
		&model.Service{},
		&model.ServiceImage{},
		&model.Package{},
		&model.Booking{},
		&model.PackageBooking{},
		&model.PackageBookingService{},
		&model.PasswordResetToken{},
	)
}
