package helper

import (
	"errors"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"gorm.io/gorm"
)

// DeleteService xoá dịch vụ cùng toàn bộ ảnh: file trên đĩa, bản ghi
// gallery, liên kết gói, rồi chính dịch vụ. File đã mất sẵn thì bỏ qua,
// lỗi DB thì rollback toàn bộ.
func DeleteService(db *gorm.DB, serviceId uint) error {
	var service model.Service
	if err := db.Preload("Images").First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError(constants.SERVICE_NOT_FOUND)
		}
		return utils.NewStorageError(err)
	}

	// xoá file trước như bản gốc: ảnh mất sẵn không chặn thao tác
	if service.CoverImage != nil {
		if err := DeleteImage(*service.CoverImage); err != nil {
			return err
		}
	}
	for _, image := range service.Images {
		if err := DeleteImage(image.ImagePath); err != nil {
			return err
		}
	}

	tx := db.Begin()
	if err := tx.Where("service_id = ?", service.ID).Delete(&model.ServiceImage{}).Error; err != nil {
		tx.Rollback()
		return utils.NewStorageError(err)
	}
	if err := tx.Exec("DELETE FROM package_services WHERE service_id = ?", service.ID).Error; err != nil {
		tx.Rollback()
		return utils.NewStorageError(err)
	}
	if err := tx.Delete(&service).Error; err != nil {
		tx.Rollback()
		return utils.NewStorageError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.NewStorageError(err)
	}

	RemoveImageDir(ImageOwnerService, service.ID)
	return nil
}

// PackageAddOns liệt kê add-on còn chọn thêm được cho một gói:
// mọi dịch vụ is_add_on trừ những dịch vụ đã nằm trong gói
func PackageAddOns(db *gorm.DB, pkg model.Package) ([]model.Service, error) {
	includedIds := make([]uint, 0, len(pkg.Services))
	for _, s := range pkg.Services {
		includedIds = append(includedIds, s.ID)
	}

	query := db.Where("is_add_on = ?", true)
	if len(includedIds) > 0 {
		query = query.Where("id NOT IN (?)", includedIds)
	}

	var addOns []model.Service
	if err := query.Find(&addOns).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return addOns, nil
}
