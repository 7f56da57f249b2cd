package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hotel_booking/utils"
)

const (
	ImageOwnerService = "service"
	ImageOwnerPackage = "package"
)

func imagesRoot() string {
	if v := os.Getenv("IMAGES_DIR"); v != "" {
		return v
	}
	return filepath.Join("static", "images")
}

func imageOwnerDir(ownerType string, ownerId uint) string {
	return filepath.Join(imagesRoot(), ownerType, strconv.FormatUint(uint64(ownerId), 10))
}

// SaveImage ghi file ảnh vào thư mục riêng của từng entity. Ảnh cover
// luôn tên cố định "cover.<ext>", ảnh gallery đặt tên theo timestamp.
func SaveImage(ownerType string, ownerId uint, originalName string, data []byte, isCover bool) (string, error) {
	dir := imageOwnerDir(ownerType, ownerId)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", utils.NewStorageError(err)
	}

	ext := filepath.Ext(originalName)
	var name string
	if isCover {
		name = "cover" + ext
	} else {
		name = time.Now().Format("20060102_150405") + ext
		// upload nhiều ảnh trong cùng một giây thì thêm hậu tố
		for i := 1; ; i++ {
			if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
				break
			}
			name = fmt.Sprintf("%s_%d%s", time.Now().Format("20060102_150405"), i, ext)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", utils.NewStorageError(err)
	}

	return filepath.ToSlash(path), nil
}

// DeleteImage xoá file ảnh; file không còn tồn tại thì coi như đã xoá
func DeleteImage(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(filepath.FromSlash(path)); err != nil && !os.IsNotExist(err) {
		return utils.NewStorageError(err)
	}
	return nil
}

// RemoveImageDir dọn cả thư mục ảnh của entity, lỗi bỏ qua
func RemoveImageDir(ownerType string, ownerId uint) {
	os.RemoveAll(imageOwnerDir(ownerType, ownerId))
}
