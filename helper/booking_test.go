package helper

import (
	"strings"
	"testing"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingPendingWithLockedPrice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	booking, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "late check-in")
	require.NoError(t, err)

	assert.Equal(t, constants.BOOKING_PENDING, booking.Status)
	assert.Equal(t, float64(100000), booking.TotalPriceRwf)
	assert.True(t, strings.HasPrefix(booking.PublicCode, "BK-"))

	// giá chốt tại lúc đặt: đổi giá dịch vụ không ảnh hưởng booking cũ
	require.NoError(t, db.Model(&model.Service{}).Where("id = ?", deluxe.ID).Update("price_rwf", 90000).Error)
	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, float64(100000), stored.TotalPriceRwf)
}

func TestCreateBookingRejectsZeroNights(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	_, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-10"), 1, "")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateBookingGuestCountOverCapacityWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	_, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 3, "")
	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)

	var count int64
	db.Model(&model.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingNilCapacityDefaultsToOne(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	// capacity 0 -> không set MaxCapacity
	room := createTestService(t, db, "Old Room", constants.CATEGORY_SINGLE, 30000, 0, false)

	_, err := CreateBooking(db, user, room.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 2, "")
	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)

	booking, err := CreateBooking(db, user, room.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, booking.GuestCount)
}

func TestCreateBookingUnknownService(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)

	_, err := CreateBooking(db, user, 9999, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "")
	var notFoundErr *utils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, fiber.StatusNotFound, utils.HTTPStatus(err))
}

func TestTransitionBookingOnlyFromPending(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	booking, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "")
	require.NoError(t, err)

	approved, err := TransitionBooking(db, booking.ID, constants.BOOKING_APPROVED)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, approved.ID)

	// booking đã chốt thì duyệt/từ chối lần nữa trả conflict
	_, err = TransitionBooking(db, booking.ID, constants.BOOKING_REJECTED)
	var conflictErr *utils.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, fiber.StatusConflict, utils.HTTPStatus(err))

	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_APPROVED, stored.Status)
}

// Hai yêu cầu trùng khoảng ngày đều duyệt được: duyệt không kiểm tra lại
// chồng lịch, quyền quyết định thuộc về admin.
func TestApproveDoesNotRecheckAvailability(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	other := createTestUser(t, db, "guest2", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	first, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "")
	require.NoError(t, err)
	second, err := CreateBooking(db, other, deluxe.ID, date(t, "2025-07-11"), date(t, "2025-07-13"), 1, "")
	require.NoError(t, err)

	_, err = TransitionBooking(db, first.ID, constants.BOOKING_APPROVED)
	require.NoError(t, err)
	_, err = TransitionBooking(db, second.ID, constants.BOOKING_APPROVED)
	require.NoError(t, err)

	var approvedCount int64
	db.Model(&model.Booking{}).Where("status = ?", constants.BOOKING_APPROVED).Count(&approvedCount)
	assert.Equal(t, int64(2), approvedCount)
}

func TestDeleteBookingUserOnlyWhenPending(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	deluxe := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)

	booking, err := CreateBooking(db, user, deluxe.ID, date(t, "2025-07-10"), date(t, "2025-07-12"), 1, "")
	require.NoError(t, err)
	_, err = TransitionBooking(db, booking.ID, constants.BOOKING_APPROVED)
	require.NoError(t, err)

	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)

	// user thường không huỷ được booking đã duyệt
	err = DeleteBooking(db, &stored, false)
	var conflictErr *utils.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// admin thì được
	require.NoError(t, DeleteBooking(db, &stored, true))
	var count int64
	db.Model(&model.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePackageBookingDerivedEndDateAndJoinRows(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	hall := createTestService(t, db, "Conference Room A", constants.CATEGORY_CONFERENCE, 200000, 100, false)
	spa := createTestService(t, db, "Spa Access", constants.CATEGORY_ADD_ON, 20000, 0, true)
	pkg := createTestPackage(t, db, "Classic Wedding", 500000, 2, 100, true, hall)

	booking, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 10, []uint{spa.ID}, "")
	require.NoError(t, err)

	assert.Equal(t, date(t, "2025-08-03"), booking.EndDate)
	assert.Equal(t, constants.BOOKING_PENDING, booking.Status)
	assert.True(t, strings.HasPrefix(booking.PublicCode, "PK-"))
	// 500000 + 20000 x 10 khách
	assert.Equal(t, float64(700000), booking.TotalPriceRwf)

	var joinRows []model.PackageBookingService
	require.NoError(t, db.Where("package_booking_id = ?", booking.ID).Find(&joinRows).Error)
	assert.Len(t, joinRows, 2)
}

func TestCreatePackageBookingGuestLimit(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	hall := createTestService(t, db, "Conference Room A", constants.CATEGORY_CONFERENCE, 200000, 100, false)
	pkg := createTestPackage(t, db, "Business Conference", 350000, 1, 50, true, hall)

	_, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 51, nil, "")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreatePackageBookingExtrasRequireCustomizable(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	hall := createTestService(t, db, "Conference Room A", constants.CATEGORY_CONFERENCE, 200000, 100, false)
	spa := createTestService(t, db, "Spa Access", constants.CATEGORY_ADD_ON, 20000, 0, true)
	pkg := createTestPackage(t, db, "Fixed Conference", 350000, 1, 50, false, hall)

	_, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 10, []uint{spa.ID}, "")
	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// không chọn thêm gì thì gói cố định vẫn đặt bình thường
	booking, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 10, nil, "")
	require.NoError(t, err)
	assert.Equal(t, float64(350000), booking.TotalPriceRwf)
}

func TestCreatePackageBookingRejectsNonAddOnExtra(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	hall := createTestService(t, db, "Conference Room A", constants.CATEGORY_CONFERENCE, 200000, 100, false)
	room := createTestService(t, db, "Deluxe Single", constants.CATEGORY_SINGLE, 50000, 2, false)
	pkg := createTestPackage(t, db, "Classic Wedding", 500000, 2, 100, true, hall)

	_, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 10, []uint{room.ID}, "")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeletePackageBookingRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "guest1", constants.ROLE_USER)
	hall := createTestService(t, db, "Conference Room A", constants.CATEGORY_CONFERENCE, 200000, 100, false)
	pkg := createTestPackage(t, db, "Classic Wedding", 500000, 2, 100, true, hall)

	booking, err := CreatePackageBooking(db, user, pkg.ID, date(t, "2025-08-01"), 10, nil, "")
	require.NoError(t, err)

	var stored model.PackageBooking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	require.NoError(t, DeletePackageBooking(db, &stored, false))

	var joinCount int64
	db.Model(&model.PackageBookingService{}).Count(&joinCount)
	assert.Equal(t, int64(0), joinCount)
}
