package handler

import (
	"errors"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPackages(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Package{}).Preload("Services").Order("name")

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var packages model.Packages
	if err := query.Find(&packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, packages)
}

// GetPackageDetail trả gói kèm dịch vụ bao gồm và danh sách add-on còn
// chọn thêm được
func GetPackageDetail(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var pkg model.Package
	if err := database.DB.Preload("Services").Where("slug = ?", slugParam).First(&pkg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PACKAGE_NOT_FOUND, err)
	}

	addOns, err := helper.PackageAddOns(database.DB, pkg)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"package":         pkg,
		"availableAddOns": addOns,
	})
}

func CreatePackage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	input, ok := c.Locals("createPackageInput").(model.CreatePackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var services []model.Service
	if err := database.DB.Find(&services, input.ServiceIds).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(services) != len(input.ServiceIds) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, errors.New("some serviceIds do not exist"))
	}

	isCustomizable := true
	if input.IsCustomizable != nil {
		isCustomizable = *input.IsCustomizable
	}

	tx := database.DB.Begin()
	pkg := model.Package{
		Name:           input.Name,
		Slug:           helper.GenerateUniquePackageSlug(tx, input.Name),
		Category:       input.Category,
		Description:    input.Description,
		BasePriceRwf:   input.BasePriceRwf,
		DurationDays:   input.DurationDays,
		MaxGuests:      input.MaxGuests,
		IsCustomizable: isCustomizable,
		Services:       services,
	}
	if err := tx.Omit("Services.*").Create(&pkg).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating package", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, pkg)
}

func EditPackage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	packageId, ok := c.Locals("packageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("editPackageInput").(model.EditPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var pkg model.Package
	if err := database.DB.First(&pkg, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PACKAGE_NOT_FOUND, err)
	}

	tx := database.DB.Begin()
	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != pkg.Name {
		updates["name"] = *input.Name
		updates["slug"] = helper.GenerateUniquePackageSlug(tx, *input.Name)
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.BasePriceRwf != nil {
		updates["base_price_rwf"] = *input.BasePriceRwf
	}
	if input.DurationDays != nil {
		updates["duration_days"] = *input.DurationDays
	}
	if input.MaxGuests != nil {
		updates["max_guests"] = *input.MaxGuests
	}
	if input.IsCustomizable != nil {
		updates["is_customizable"] = *input.IsCustomizable
	}

	if len(updates) > 0 {
		if err := tx.Model(&pkg).Updates(updates).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating package", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

// AddServiceToPackage gắn thêm một dịch vụ vào gói (idempotent)
func AddServiceToPackage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	packageId, ok := c.Locals("packageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("addPackageServiceInput").(model.AddPackageServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var pkg model.Package
	if err := database.DB.First(&pkg, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PACKAGE_NOT_FOUND, err)
	}
	var service model.Service
	if err := database.DB.First(&service, input.ServiceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	if err := database.DB.Model(&pkg).Association("Services").Append(&service); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"packageId": pkg.ID,
		"serviceId": service.ID,
	})
}

// RemoveServiceFromPackage gỡ dịch vụ ra khỏi gói, không đụng tới booking cũ
func RemoveServiceFromPackage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	packageId, err := c.ParamsInt("packageId")
	if err != nil || packageId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	serviceId, err := c.ParamsInt("serviceId")
	if err != nil || serviceId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var pkg model.Package
	if err := database.DB.First(&pkg, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PACKAGE_NOT_FOUND, err)
	}
	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	if err := database.DB.Model(&pkg).Association("Services").Delete(&service); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"packageId": pkg.ID,
		"serviceId": service.ID,
	})
}

// DeletePackage xoá gói, liên kết dịch vụ và ảnh cover. Booking gói cũ
// giữ nguyên lịch sử nên gói đang có booking thì không cho xoá.
func DeletePackage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	packageId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var pkg model.Package
	if err := database.DB.First(&pkg, packageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PACKAGE_NOT_FOUND, err)
	}

	var bookingCount int64
	database.DB.Model(&model.PackageBooking{}).Where("package_id = ?", pkg.ID).Count(&bookingCount)
	if bookingCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Package has existing bookings", errors.New("package in use"))
	}

	if pkg.CoverImage != nil {
		if err := helper.DeleteImage(*pkg.CoverImage); err != nil {
			return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
		}
	}

	tx := database.DB.Begin()
	if err := tx.Exec("DELETE FROM package_services WHERE package_id = ?", pkg.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&pkg).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.RemoveImageDir(helper.ImageOwnerPackage, pkg.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": packageId})
}
