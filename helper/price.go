package helper

import (
	"time"

	"hotel_booking/constants"
	"hotel_booking/model"
)

// Nights đếm số đêm giữa hai ngày (chỉ tính phần ngày)
func Nights(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate).Hours() / 24)
}

func CalculateBookingPrice(service model.Service, nights int) float64 {
	return service.PriceRwf * float64(nights)
}

// CalculatePackagePrice tính giá gói: giá gốc cộng các dịch vụ chọn thêm.
// Dịch vụ đã nằm trong gói không tính thêm tiền; add-on tính theo đầu
// khách, các dịch vụ khác tính một lần.
func CalculatePackagePrice(pkg model.Package, guestCount int, extraServices []model.Service) float64 {
	total := pkg.BasePriceRwf

	included := make(map[uint]bool, len(pkg.Services))
	for _, s := range pkg.Services {
		included[s.ID] = true
	}

	for _, s := range extraServices {
		if included[s.ID] {
			continue
		}
		if s.Category == constants.CATEGORY_ADD_ON {
			total += s.PriceRwf * float64(guestCount)
		} else {
			total += s.PriceRwf
		}
	}

	return total
}
