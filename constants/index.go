package constants

// Roles
const (
	ROLE_ADMIN = "Admin"
	ROLE_USER  = "User"
)

var ROLES = []string{ROLE_ADMIN, ROLE_USER}

// Booking status
const (
	BOOKING_PENDING  = "pending"
	BOOKING_APPROVED = "approved"
	BOOKING_REJECTED = "rejected"
)

// Service categories
const (
	CATEGORY_SINGLE     = "Single"
	CATEGORY_DOUBLE     = "Double"
	CATEGORY_SUITE      = "Suite"
	CATEGORY_CONFERENCE = "Conference"
	CATEGORY_ADD_ON     = "Add-on"
)

var SERVICE_CATEGORIES = []string{CATEGORY_SINGLE, CATEGORY_DOUBLE, CATEGORY_SUITE, CATEGORY_CONFERENCE, CATEGORY_ADD_ON}

// Package categories
const (
	PACKAGE_WEDDING    = "Wedding"
	PACKAGE_CONFERENCE = "Conference"
)

var PACKAGE_CATEGORIES = []string{PACKAGE_WEDDING, PACKAGE_CONFERENCE}

// Response messages
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input from locals"
	DATA_INPUT_IS_NOT_NUMBER   = "Param is not a number"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE         = "Your account has been disabled. Please contact admin"
	NOT_PERMISSION             = "You do not have permission to perform this action"
	SERVICE_NOT_FOUND          = "Service not found"
	PACKAGE_NOT_FOUND          = "Package not found"
	BOOKING_NOT_FOUND          = "Booking not found"
	USER_NOT_FOUND             = "User not found"
)
