package helper

import (
	"errors"
	"fmt"
	"time"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewBookingCode(prefix string) string {
	return fmt.Sprintf("%s-%06d", prefix, uuid.New().ID()%1000000)
}

// CreateBooking tạo booking dịch vụ ở trạng thái pending. Giá chốt tại
// thời điểm tạo và không tính lại. Không kiểm tra chồng lịch ở đây:
// pending không giữ chỗ, admin mới là người quyết định khi duyệt.
func CreateBooking(db *gorm.DB, user model.User, serviceId uint, startDate, endDate time.Time, guestCount int, specialRequests string) (*model.Booking, error) {
	if Nights(startDate, endDate) < 1 {
		return nil, utils.NewValidationError("booking must be at least one night")
	}

	var service model.Service
	if err := db.First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError(constants.SERVICE_NOT_FOUND)
		}
		return nil, utils.NewStorageError(err)
	}

	// không có max_capacity thì coi như phòng 1 khách
	capacity := 1
	if service.MaxCapacity != nil {
		capacity = *service.MaxCapacity
	}
	if guestCount < 1 || guestCount > capacity {
		return nil, utils.NewValidationError(fmt.Sprintf("maximum %d guests allowed for this service", capacity))
	}

	booking := model.Booking{
		PublicCode:      NewBookingCode("BK"),
		UserId:          user.ID,
		ServiceId:       service.ID,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalPriceRwf:   CalculateBookingPrice(service, Nights(startDate, endDate)),
		Status:          constants.BOOKING_PENDING,
		GuestCount:      guestCount,
		SpecialRequests: specialRequests,
	}

	tx := db.Begin()
	if err := tx.Omit("User", "Service").Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewStorageError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	booking.Service = service
	return &booking, nil
}

// CreatePackageBooking tạo booking gói sự kiện. Ngày kết thúc suy ra từ
// duration của gói; dịch vụ đã chọn ghi vào bảng nối trong cùng transaction.
func CreatePackageBooking(db *gorm.DB, user model.User, packageId uint, startDate time.Time, guestCount int, extraServiceIds []uint, specialRequests string) (*model.PackageBooking, error) {
	var pkg model.Package
	if err := db.Preload("Services").First(&pkg, packageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError(constants.PACKAGE_NOT_FOUND)
		}
		return nil, utils.NewStorageError(err)
	}

	if guestCount < 1 || guestCount > pkg.MaxGuests {
		return nil, utils.NewValidationError(fmt.Sprintf("maximum %d guests allowed for this package", pkg.MaxGuests))
	}
	if len(extraServiceIds) > 0 && !pkg.IsCustomizable {
		return nil, utils.NewValidationError("this package is not customizable")
	}

	included := make(map[uint]bool, len(pkg.Services))
	for _, s := range pkg.Services {
		included[s.ID] = true
	}

	var extras []model.Service
	if len(extraServiceIds) > 0 {
		if err := db.Find(&extras, extraServiceIds).Error; err != nil {
			return nil, utils.NewStorageError(err)
		}
		if len(extras) != len(extraServiceIds) {
			return nil, utils.NewNotFoundError(constants.SERVICE_NOT_FOUND)
		}
		for _, s := range extras {
			if !s.IsAddOn && !included[s.ID] {
				return nil, utils.NewValidationError(fmt.Sprintf("service %q is not offered as an add-on", s.Name))
			}
		}
	}

	endDate := startDate.AddDate(0, 0, pkg.DurationDays)

	// dịch vụ đã chọn = dịch vụ kèm gói + add-on chọn thêm
	selected := make([]model.PackageBookingService, 0, len(pkg.Services)+len(extras))
	seen := make(map[uint]bool)
	for _, s := range pkg.Services {
		selected = append(selected, model.PackageBookingService{ServiceId: s.ID})
		seen[s.ID] = true
	}
	for _, s := range extras {
		if !seen[s.ID] {
			selected = append(selected, model.PackageBookingService{ServiceId: s.ID})
			seen[s.ID] = true
		}
	}

	booking := model.PackageBooking{
		PublicCode:       NewBookingCode("PK"),
		UserId:           user.ID,
		PackageId:        pkg.ID,
		StartDate:        startDate,
		EndDate:          endDate,
		TotalPriceRwf:    CalculatePackagePrice(pkg, guestCount, extras),
		Status:           constants.BOOKING_PENDING,
		GuestCount:       guestCount,
		SpecialRequests:  specialRequests,
		SelectedServices: selected,
	}

	tx := db.Begin()
	if err := tx.Omit("User", "Package", "SelectedServices.Service").Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewStorageError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	booking.Package = pkg
	return &booking, nil
}

// TransitionBooking chuyển pending -> approved/rejected. Booking đã chốt
// (không còn pending) thì trả conflict chứ không ghi đè. Không kiểm tra
// lại chồng lịch lúc duyệt: hai yêu cầu trùng khoảng ngày đều có thể được
// duyệt nối tiếp, đây là quyết định của admin.
func TransitionBooking(db *gorm.DB, bookingId uint, status string) (*model.Booking, error) {
	var booking model.Booking
	if err := db.Preload("Service").Preload("User").First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError(constants.BOOKING_NOT_FOUND)
		}
		return nil, utils.NewStorageError(err)
	}

	if booking.Status != constants.BOOKING_PENDING {
		return nil, utils.NewConflictError("booking has already been processed", nil)
	}

	if err := db.Model(&booking).Update("status", status).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &booking, nil
}

func TransitionPackageBooking(db *gorm.DB, bookingId uint, status string) (*model.PackageBooking, error) {
	var booking model.PackageBooking
	if err := db.Preload("Package").Preload("User").First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError(constants.BOOKING_NOT_FOUND)
		}
		return nil, utils.NewStorageError(err)
	}

	if booking.Status != constants.BOOKING_PENDING {
		return nil, utils.NewConflictError("booking has already been processed", nil)
	}

	if err := db.Model(&booking).Update("status", status).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &booking, nil
}

// DeleteBooking huỷ bằng cách xoá bản ghi: user chỉ xoá được booking của
// mình khi còn pending, admin xoá được bất kỳ lúc nào.
func DeleteBooking(db *gorm.DB, booking *model.Booking, isAdmin bool) error {
	if !isAdmin && booking.Status != constants.BOOKING_PENDING {
		return utils.NewConflictError("only pending bookings can be cancelled", nil)
	}
	if err := db.Delete(booking).Error; err != nil {
		return utils.NewStorageError(err)
	}
	return nil
}

func DeletePackageBooking(db *gorm.DB, booking *model.PackageBooking, isAdmin bool) error {
	if !isAdmin && booking.Status != constants.BOOKING_PENDING {
		return utils.NewConflictError("only pending bookings can be cancelled", nil)
	}

	tx := db.Begin()
	if err := tx.Where("package_booking_id = ?", booking.ID).Delete(&model.PackageBookingService{}).Error; err != nil {
		tx.Rollback()
		return utils.NewStorageError(err)
	}
	if err := tx.Delete(booking).Error; err != nil {
		tx.Rollback()
		return utils.NewStorageError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.NewStorageError(err)
	}
	return nil
}
