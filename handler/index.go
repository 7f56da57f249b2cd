package handler

import (
	"strconv"

	"hotel_booking/model"

	"github.com/gofiber/fiber/v2"
)

// parsePagination đọc ?limit=&page= cho các endpoint danh sách; thiếu
// hoặc sai định dạng thì trả về toàn bộ
func parsePagination(c *fiber.Ctx) model.Pagination {
	var p model.Pagination
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		p.Page = &v
	}
	return p
}
