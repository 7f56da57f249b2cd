package handler

import (
	"errors"
	"io"

	"hotel_booking/constants"
	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func readFormFile(c *fiber.Ctx, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}

// UploadServiceCover nhận ảnh cover qua multipart, ghi đè ảnh cũ nếu có
func UploadServiceCover(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	serviceId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	filename, data, err := readFormFile(c, "image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	// cover cũ có đuôi file khác thì phải xoá tay, SaveImage chỉ ghi đè
	// khi trùng tên
	if service.CoverImage != nil {
		if err := helper.DeleteImage(*service.CoverImage); err != nil {
			return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
		}
	}

	path, err := helper.SaveImage(helper.ImageOwnerService, service.ID, filename, data, true)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	if err := database.DB.Model(&service).Update("cover_image", path).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"coverImage": path})
}

// UploadServiceImages nhận nhiều ảnh gallery trong một request (field "images")
func UploadServiceImages(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	serviceId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SERVICE_NOT_FOUND, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid multipart form", err)
	}
	files := form.File["images"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No image files provided", errors.New("images field is empty"))
	}
	caption := c.FormValue("caption")

	saved := make([]model.ServiceImage, 0, len(files))
	for _, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot read uploaded file", err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot read uploaded file", err)
		}

		path, err := helper.SaveImage(helper.ImageOwnerService, service.ID, fileHeader.Filename, data, false)
		if err != nil {
			return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
		}

		image := model.ServiceImage{
			ServiceId: service.ID,
			ImagePath: path,
			Caption:   caption,
		}
		if err := database.DB.Create(&image).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		saved = append(saved, image)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, saved)
}

// DeleteServiceImage xoá một ảnh gallery: cả bản ghi lẫn file
func DeleteServiceImage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin only"))
	}

	imageId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var image model.ServiceImage
	if err := database.DB.First(&image, imageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Image not found", err)
	}

	if err := helper.DeleteImage(image.ImagePath); err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}
	if err := database.DB.Delete(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": imageId})
}

// UploadPackageCover tương tự cover dịch vụ nhưng cho gói sự kiện
func UploadPackageCover(c *fiber.Ctx) error {
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

	filename, data, err := readFormFile(c, "image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	if pkg.CoverImage != nil {
		if err := helper.DeleteImage(*pkg.CoverImage); err != nil {
			return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
		}
	}

	path, err := helper.SaveImage(helper.ImageOwnerPackage, pkg.ID, filename, data, true)
	if err != nil {
		return utils.ErrorResponse(c, utils.HTTPStatus(err), err.Error(), err)
	}

	if err := database.DB.Model(&pkg).Update("cover_image", path).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"coverImage": path})
}
