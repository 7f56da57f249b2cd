package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Phân loại lỗi nghiệp vụ: handler chỉ cần map sang HTTP status.

// ValidationError: dữ liệu đầu vào sai (khoảng ngày, số khách...), không retry
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError: thao tác trên bản ghi không tồn tại hoặc đã bị xoá
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ConflictError: vi phạm ràng buộc (username trùng, trạng thái đã chốt...)
type ConflictError struct {
	Message string
	Cause   error
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ConflictError) Unwrap() error { return e.Cause }

func NewConflictError(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

// StorageError: storage bên dưới lỗi, có thể transient nhưng không tự retry
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string { return "storage failure: " + e.Cause.Error() }

func (e *StorageError) Unwrap() error { return e.Cause }

func NewStorageError(cause error) *StorageError {
	return &StorageError{Cause: cause}
}

// HTTPStatus map lỗi nghiệp vụ sang fiber status
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var conflictErr *ConflictError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
