package helper

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hotel_booking/database"
	"hotel_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var cleanupScheduler gocron.Scheduler

// StartCleanupScheduler chạy dọn dẹp hằng ngày lúc 03:00: token reset
// mật khẩu hết hạn và thư mục ảnh mồ côi
func StartCleanupScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Lỗi khởi tạo cleanup scheduler: %v", err)
		return
	}

	cleanupScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(runCleanup),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký cleanup job: %v", err)
		return
	}

	s.Start()
	log.Println("Cleanup scheduler started (03:00 daily)")
}

func StopCleanupScheduler() {
	if cleanupScheduler != nil {
		cleanupScheduler.Shutdown()
		log.Println("Cleanup scheduler stopped")
	}
}

func runCleanup() {
	purgeExpiredResetTokens()
	purgeOrphanImageDirs(ImageOwnerService)
	purgeOrphanImageDirs(ImageOwnerPackage)
}

func purgeExpiredResetTokens() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetToken{})

	if result.Error != nil {
		log.Printf("Lỗi dọn token hết hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã xoá %d password reset token hết hạn", result.RowsAffected)
	}
}

// purgeOrphanImageDirs xoá thư mục ảnh của entity đã bị xoá khỏi DB
func purgeOrphanImageDirs(ownerType string) {
	root := filepath.Join(imagesRoot(), ownerType)
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil {
			continue
		}

		var count int64
		if ownerType == ImageOwnerService {
			database.DB.Model(&model.Service{}).Where("id = ?", id).Count(&count)
		} else {
			database.DB.Model(&model.Package{}).Where("id = ?", id).Count(&count)
		}

		if count == 0 {
			os.RemoveAll(filepath.Join(root, entry.Name()))
			log.Printf("Đã xoá thư mục ảnh mồ côi %s/%s", ownerType, entry.Name())
		}
	}
}
