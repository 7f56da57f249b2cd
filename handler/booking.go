package handler

import (
	"errors"
	"fmt"
	"time"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking đặt dịch vụ: user nào đăng nhập cũng đặt được, booking
// sinh ra ở trạng thái pending chờ admin duyệt
func CreateBooking(c *fiber.Ctx) error {
	tokenClaim, _, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	input, ok := c.Locals("createBookingInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	startDate, _ := c.Locals("startDate").(time.Time)
	endDate, _ := c.Locals("endDate").(time.Time)

	var user model.User
	if err := database.DB.First(&user, tokenClaim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	booking, err := helper.CreateBooking(database.DB, user, input.ServiceId, startDate, endDate, input.GuestCount, input.SpecialRequests)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       "created",
		Kind:       "service",
		BookingId:  booking.ID,
		PublicCode: booking.PublicCode,
		Username:   user.Username,
		Status:     booking.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// GetBookings: admin thấy tất cả, user chỉ thấy booking của mình.
// Lọc được theo ?status=
func GetBookings(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	query := database.DB.Model(&model.Booking{}).Preload("Service").Preload("User").Order("created_at desc")
	if !isAdmin {
		query = query.Where("user_id = ?", tokenClaim.UserId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pagination := parsePagination(c)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	var bookings model.Bookings
	if err := query.Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetBookingDetail(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var booking model.Booking
	if err := database.DB.Preload("Service").Preload("User").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if !isAdmin && booking.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not your booking"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func transitionAndBroadcast(c *fiber.Ctx, status, eventType string) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	booking, err := helper.TransitionBooking(database.DB, bookingId, status)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       eventType,
		Kind:       "service",
		BookingId:  booking.ID,
		PublicCode: booking.PublicCode,
		Username:   booking.User.Username,
		Status:     status,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     booking.ID,
		"status": status,
	})
}

func ApproveBooking(c *fiber.Ctx) error {
	return transitionAndBroadcast(c, constants.BOOKING_APPROVED, "approved")
}

func RejectBooking(c *fiber.Ctx) error {
	return transitionAndBroadcast(c, constants.BOOKING_REJECTED, "rejected")
}

// DeleteBooking huỷ booking. User huỷ được booking pending của mình,
// admin xoá được bất kỳ booking nào.
func DeleteBooking(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if !isAdmin && booking.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not your booking"))
	}

	if err := helper.DeleteBooking(database.DB, &booking, isAdmin); err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       "cancelled",
		Kind:       "service",
		BookingId:  booking.ID,
		PublicCode: booking.PublicCode,
		Username:   tokenClaim.Username,
		Status:     booking.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": bookingId})
}

// GetBookingQR trả mã QR (PNG) chứa mã booking để check-in tại quầy.
// Chỉ booking đã duyệt mới có QR.
func GetBookingQR(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if !isAdmin && booking.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not your booking"))
	}
	if booking.Status != constants.BOOKING_APPROVED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking is not approved yet", errors.New("status "+booking.Status))
	}

	content := fmt.Sprintf("%s|%s|%s", booking.PublicCode, booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02"))
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
