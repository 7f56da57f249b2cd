package validate

import (
	"errors"
	"time"

	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func ParseDateQuery(c *fiber.Ctx, key string) (time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return time.Time{}, errors.New(key + " is required")
	}
	return time.Parse("2006-01-02", value)
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "startDate sai định dạng", err, "startDate")
		}
		endDate, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "endDate sai định dạng", err, "endDate")
		}

		c.Locals("createBookingInput", input)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}

func CreatePackageBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePackageBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "startDate sai định dạng", err, "startDate")
		}

		c.Locals("createPackageBookingInput", input)
		c.Locals("startDate", startDate)
		return c.Next()
	}
}
