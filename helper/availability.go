package helper

import (
	"time"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"gorm.io/gorm"
)

// AvailableServices trả về các dịch vụ còn trống trong khoảng
// [startDate, endDate). Chỉ booking approved mới chặn lịch; pending và
// rejected không giữ chỗ. Overlap dùng biên đóng
// (start_date <= endDate AND end_date >= startDate) nên hai kỳ nghỉ liền
// kề — ngày trả phòng trùng ngày nhận phòng — vẫn tính là trùng lịch.
// Dịch vụ add-on không đặt trực tiếp theo ngày nên bị loại khỏi kết quả.
func AvailableServices(db *gorm.DB, startDate, endDate time.Time, category string) ([]model.Service, error) {
	if !startDate.Before(endDate) {
		return nil, utils.NewValidationError("check-out date must be after check-in date")
	}

	booked := db.Model(&model.Booking{}).
		Select("service_id").
		Where("status = ?", constants.BOOKING_APPROVED).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	query := db.Model(&model.Service{}).Where("is_add_on = ?", false)
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var services []model.Service
	if err := query.Where("id NOT IN (?)", booked).Find(&services).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return services, nil
}
