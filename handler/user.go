package handler

import (
	"errors"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetUsers trả danh sách tài khoản kèm số booking của từng người (admin only)
func GetUsers(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	var users model.Users
	query := database.DB.Model(&model.User{}).Order("created_at desc")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR full_name LIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pagination := parsePagination(c)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	if err := query.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	responses := make([]model.UserResponse, 0, len(users))
	for _, user := range users {
		var resp model.UserResponse
		if err := copier.Copy(&resp, &user); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		database.DB.Model(&model.Booking{}).Where("user_id = ?", user.ID).Count(&resp.BookingCount)
		database.DB.Model(&model.PackageBooking{}).Where("user_id = ?", user.ID).Count(&resp.PackageBookingCount)
		responses = append(responses, resp)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       responses,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// ActiveUser bật/tắt tài khoản. Tắt thì user hết đăng nhập được ngay
// lần sau (Login và RefreshToken đều check isActive).
func ActiveUser(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	isActive, ok := c.Locals("isActive").(bool)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if userId == tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot change your own active status", errors.New("self deactivate"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}
	// tài khoản admin seed không bao giờ bị khoá
	if user.Username == "admin" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot modify the seed admin account", errors.New("seed admin protected"))
	}

	if err := database.DB.Model(&user).Update("is_active", isActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       user.ID,
		"isActive": isActive,
	})
}

// DeleteUser xoá tài khoản và toàn bộ booking của người đó
func DeleteUser(c *fiber.Ctx) error {
	tokenClaim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	userId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if userId == tokenClaim.UserId {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot delete your own account", errors.New("self delete"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}
	if user.Username == "admin" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot modify the seed admin account", errors.New("seed admin protected"))
	}

	tx := database.DB.Begin()
	if err := tx.Exec("DELETE FROM package_booking_services WHERE package_booking_id IN (SELECT id FROM package_bookings WHERE user_id = ?)", userId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("user_id = ?", userId).Delete(&model.PackageBooking{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("user_id = ?", userId).Delete(&model.Booking{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("user_id = ?", userId).Delete(&model.PasswordResetToken{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": userId})
}

// GetProfile trả thông tin của chính người đang đăng nhập
func GetProfile(c *fiber.Ctx) error {
	tokenClaim, _, _ := helper.GetInfoUserFromToken(c)
	if tokenClaim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
	}

	var user model.User
	if err := database.DB.First(&user, tokenClaim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	var resp model.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	database.DB.Model(&model.Booking{}).Where("user_id = ?", user.ID).Count(&resp.BookingCount)
	database.DB.Model(&model.PackageBooking{}).Where("user_id = ?", user.ID).Count(&resp.PackageBookingCount)

	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}
