package router

import (
	"hotel_booking/handler"
	"hotel_booking/middleware"
	"hotel_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/signup", validate.Signup(), handler.Signup)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	user := v1.Group("/user", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Get("/me", middleware.Protected(), handler.GetProfile)
	user.Patch("/:userId/active/:isActive", middleware.Protected(), validate.ActiveUser(), handler.ActiveUser)
	user.Delete("/:userId", middleware.Protected(), validate.GetById("userId"), handler.DeleteUser)

	service := v1.Group("/service", logger.New())
	service.Get("/", handler.GetServices)
	service.Get("/available", validate.AvailableServices(), handler.GetAvailableServices)
	service.Get("/:slug", handler.GetServiceDetail)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", middleware.Protected(), validate.EditService("serviceId"), handler.EditService)
	// đăng ký trước route /:serviceId để "images" không bị bắt nhầm làm id
	service.Delete("/images/:imageId", middleware.Protected(), validate.GetById("imageId"), handler.DeleteServiceImage)
	service.Delete("/:serviceId", middleware.Protected(), validate.GetById("serviceId"), handler.DeleteService)
	service.Post("/:serviceId/cover", middleware.Protected(), validate.GetById("serviceId"), handler.UploadServiceCover)
	service.Post("/:serviceId/images", middleware.Protected(), validate.GetById("serviceId"), handler.UploadServiceImages)

	pkg := v1.Group("/package", logger.New())
	pkg.Get("/", handler.GetPackages)
	pkg.Get("/:slug", handler.GetPackageDetail)
	pkg.Post("/", middleware.Protected(), validate.CreatePackage(), handler.CreatePackage)
	pkg.Put("/:packageId", middleware.Protected(), validate.EditPackage("packageId"), handler.EditPackage)
	pkg.Delete("/:packageId", middleware.Protected(), validate.GetById("packageId"), handler.DeletePackage)
	pkg.Post("/:packageId/services", middleware.Protected(), validate.AddPackageService("packageId"), handler.AddServiceToPackage)
	pkg.Delete("/:packageId/services/:serviceId", middleware.Protected(), handler.RemoveServiceFromPackage)
	pkg.Post("/:packageId/cover", middleware.Protected(), validate.GetById("packageId"), handler.UploadPackageCover)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/feed", middleware.Protected(), middleware.AdminOnly(), websocket.New(handler.BookingFeed))
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingDetail)
	booking.Get("/:bookingId/qr", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingQR)
	booking.Patch("/:bookingId/approve", middleware.Protected(), validate.GetById("bookingId"), handler.ApproveBooking)
	booking.Patch("/:bookingId/reject", middleware.Protected(), validate.GetById("bookingId"), handler.RejectBooking)
	booking.Delete("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.DeleteBooking)

	packageBooking := v1.Group("/package-booking", logger.New())
	packageBooking.Get("/", middleware.Protected(), handler.GetPackageBookings)
	packageBooking.Post("/", middleware.Protected(), validate.CreatePackageBooking(), handler.CreatePackageBooking)
	packageBooking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetPackageBookingDetail)
	packageBooking.Patch("/:bookingId/approve", middleware.Protected(), validate.GetById("bookingId"), handler.ApprovePackageBooking)
	packageBooking.Patch("/:bookingId/reject", middleware.Protected(), validate.GetById("bookingId"), handler.RejectPackageBooking)
	packageBooking.Delete("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.DeletePackageBooking)

	// ảnh phục vụ trực tiếp từ đĩa
	app.Static("/static", "./static")
}
