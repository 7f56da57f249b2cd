package helper

import (
	"os"
	"path/filepath"
	"testing"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveImageCoverAndGallery(t *testing.T) {
	t.Setenv("IMAGES_DIR", t.TempDir())
	db := setupTestDB(t)
	service := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	coverPath, err := SaveImage(ImageOwnerService, service.ID, "photo.jpg", []byte("cover-bytes"), true)
	require.NoError(t, err)
	assert.Equal(t, "cover.jpg", filepath.Base(coverPath))

	galleryPath, err := SaveImage(ImageOwnerService, service.ID, "room.png", []byte("gallery-bytes"), false)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(galleryPath))

	data, err := os.ReadFile(filepath.FromSlash(coverPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("cover-bytes"), data)
}

func TestDeleteImageMissingFileIsBenign(t *testing.T) {
	t.Setenv("IMAGES_DIR", t.TempDir())

	assert.NoError(t, DeleteImage("does/not/exist.jpg"))
	assert.NoError(t, DeleteImage(""))
}

// Xoá dịch vụ phải dọn sạch: file ảnh, bản ghi gallery, liên kết gói và
// chính dịch vụ. Một ảnh mất sẵn trên đĩa không chặn thao tác.
func TestDeleteServiceCascades(t *testing.T) {
	t.Setenv("IMAGES_DIR", t.TempDir())
	db := setupTestDB(t)
	service := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)
	createTestPackage(t, db, "Classic Wedding", 500000, 2, 100, true, service)

	coverPath, err := SaveImage(ImageOwnerService, service.ID, "cover.jpg", []byte("c"), true)
	require.NoError(t, err)
	require.NoError(t, db.Model(&service).Update("cover_image", coverPath).Error)

	paths := []string{coverPath}
	for _, name := range []string{"a.jpg", "b.jpg"} {
		p, err := SaveImage(ImageOwnerService, service.ID, name, []byte(name), false)
		require.NoError(t, err)
		require.NoError(t, db.Create(&model.ServiceImage{ServiceId: service.ID, ImagePath: p}).Error)
		paths = append(paths, p)
	}

	// một file gallery bị xoá tay trước đó
	require.NoError(t, os.Remove(filepath.FromSlash(paths[2])))

	require.NoError(t, DeleteService(db, service.ID))

	for _, p := range paths {
		_, statErr := os.Stat(filepath.FromSlash(p))
		assert.True(t, os.IsNotExist(statErr), "file %s should be gone", p)
	}

	var serviceCount, imageCount, linkCount int64
	db.Model(&model.Service{}).Where("id = ?", service.ID).Count(&serviceCount)
	db.Model(&model.ServiceImage{}).Where("service_id = ?", service.ID).Count(&imageCount)
	db.Table("package_services").Where("service_id = ?", service.ID).Count(&linkCount)
	assert.Equal(t, int64(0), serviceCount)
	assert.Equal(t, int64(0), imageCount)
	assert.Equal(t, int64(0), linkCount)
}

func TestDeleteServiceNotFound(t *testing.T) {
	t.Setenv("IMAGES_DIR", t.TempDir())
	db := setupTestDB(t)

	err := DeleteService(db, 12345)
	var notFoundErr *utils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestPackageAddOnsExcludesIncluded(t *testing.T) {
	db := setupTestDB(t)
	spa := createTestService(t, db, "Spa Access", constants.CATEGORY_ADD_ON, 20000, 0, true)
	createTestService(t, db, "Catering", constants.CATEGORY_ADD_ON, 15000, 0, true)
	createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)
	pkg := createTestPackage(t, db, "Classic Wedding", 500000, 2, 100, true, spa)

	var loaded model.Package
	require.NoError(t, db.Preload("Services").First(&loaded, pkg.ID).Error)

	addOns, err := PackageAddOns(db, loaded)
	require.NoError(t, err)
	assert.Equal(t, []string{"Catering"}, serviceNames(addOns))
}

func TestGenerateUniqueServiceSlugAddsSuffix(t *testing.T) {
	db := setupTestDB(t)
	first := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)
	assert.Equal(t, "deluxe-single", first.Slug)

	second := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 60000, 2, false)
	assert.Equal(t, "deluxe-single-1", second.Slug)
}
