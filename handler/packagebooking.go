package handler

import (
	"errors"
	"time"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePackageBooking đặt gói sự kiện. Ngày kết thúc server tự tính từ
// duration của gói, giá chốt tại thời điểm đặt.
func CreatePackageBooking(c *fiber.Ctx) error {
	tokenClaim, _, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	input, ok := c.Locals("createPackageBookingInput").(model.CreatePackageBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	startDate, _ := c.Locals("startDate").(time.Time)

	var user model.User
	if err := database.DB.First(&user, tokenClaim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	booking, err := helper.CreatePackageBooking(database.DB, user, input.PackageId, startDate, input.GuestCount, input.ExtraServiceIds, input.SpecialRequests)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       "created",
		Kind:       "package",
		BookingId:  booking.ID,
		PublicCode: booking.PublicCode,
		Username:   user.Username,
		Status:     booking.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetPackageBookings(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	query := database.DB.Model(&model.PackageBooking{}).
		Preload("Package").
		Preload("User").
		Preload("SelectedServices.Service").
		Order("created_at desc")
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

	var bookings model.PackageBookings
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

func GetPackageBookingDetail(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var booking model.PackageBooking
	if err := database.DB.
		Preload("Package").
		Preload("User").
		Preload("SelectedServices.Service").
		First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if !isAdmin && booking.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not your booking"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func transitionPackageAndBroadcast(c *fiber.Ctx, status, eventType string) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	booking, err := helper.TransitionPackageBooking(database.DB, bookingId, status)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       eventType,
		Kind:       "package",
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

func ApprovePackageBooking(c *fiber.Ctx) error {
	return transitionPackageAndBroadcast(c, constants.BOOKING_APPROVED, "approved")
}

func RejectPackageBooking(c *fiber.Ctx) error {
	return transitionPackageAndBroadcast(c, constants.BOOKING_REJECTED, "rejected")
}

func DeletePackageBooking(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	bookingId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var booking model.PackageBooking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if !isAdmin && booking.UserId != tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not your booking"))
	}

	if err := helper.DeletePackageBooking(database.DB, &booking, isAdmin); err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	BroadcastBookingEvent(BookingEvent{
		Type:       "cancelled",
		Kind:       "package",
		BookingId:  booking.ID,
		PublicCode: booking.PublicCode,
		Username:   tokenClaim.Username,
		Status:     booking.Status,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": bookingId})
}
