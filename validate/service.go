package validate

import (
	"errors"
	"strconv"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createServiceInput", input)
		return c.Next()
	}
}

func EditService(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditServiceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("editServiceInput", input)
		c.Locals("serviceId", uint(valueKey))
		return c.Next()
	}
}

// AvailableServices đọc query startDate/endDate/category cho trang tìm phòng
func AvailableServices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, err := ParseDateQuery(c, "startDate")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "startDate sai định dạng (YYYY-MM-DD)", err, "startDate")
		}
		endDate, err := ParseDateQuery(c, "endDate")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "endDate sai định dạng (YYYY-MM-DD)", err, "endDate")
		}

		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		c.Locals("category", c.Query("category", "All"))
		return c.Next()
	}
}
