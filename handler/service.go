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

// GetServices liệt kê dịch vụ, lọc được theo category và isAddOn
func GetServices(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Service{}).Preload("Images").Order("category, name")

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}
	if addOn := c.Query("isAddOn"); addOn == "true" || addOn == "false" {
		query = query.Where("is_add_on = ?", addOn == "true")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pagination := parsePagination(c)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	var services model.Services
	if err := query.Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       services,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// GetServiceDetail tra theo slug cho trang chi tiết
func GetServiceDetail(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var service model.Service
	if err := database.DB.Preload("Images").Where("slug = ?", slugParam).First(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

// GetAvailableServices trả các dịch vụ còn trống trong khoảng ngày yêu cầu
func GetAvailableServices(c *fiber.Ctx) error {
	startDate, ok := c.Locals("startDate").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	endDate, ok := c.Locals("endDate").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	category, _ := c.Locals("category").(string)

	services, err := helper.AvailableServices(database.DB, startDate, endDate, category)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"startDate": startDate.Format("2006-01-02"),
		"endDate":   endDate.Format("2006-01-02"),
		"category":  category,
		"services":  services,
	})
}

func CreateService(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	input, ok := c.Locals("createServiceInput").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	isAddOn := input.Category == constants.CATEGORY_ADD_ON
	if input.IsAddOn != nil {
		isAddOn = *input.IsAddOn
	}

	tx := database.DB.Begin()
	service := model.Service{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueServiceSlug(tx, input.Name),
		Category:    input.Category,
		Description: input.Description,
		PriceRwf:    input.PriceRwf,
		Size:        input.Size,
		Details:     input.Details,
		MaxCapacity: input.MaxCapacity,
		IsAddOn:     isAddOn,
	}
	if err := tx.Create(&service).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating service", err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func EditService(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	serviceId, ok := c.Locals("serviceId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("editServiceInput").(model.EditServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	tx := database.DB.Begin()
	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != service.Name {
		updates["name"] = *input.Name
		updates["slug"] = helper.GenerateUniqueServiceSlug(tx, *input.Name)
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PriceRwf != nil {
		updates["price_rwf"] = *input.PriceRwf
	}
	if input.Size != nil {
		updates["size"] = *input.Size
	}
	if input.Details != nil {
		updates["details"] = *input.Details
	}
	if input.MaxCapacity != nil {
		updates["max_capacity"] = *input.MaxCapacity
	}
	if input.IsAddOn != nil {
		updates["is_add_on"] = *input.IsAddOn
	}

	if len(updates) > 0 {
		if err := tx.Model(&service).Updates(updates).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating service", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

// DeleteService xoá dịch vụ kèm ảnh trên đĩa và các bản ghi liên quan
func DeleteService(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	serviceId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := helper.DeleteService(database.DB, serviceId); err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": serviceId})
}
