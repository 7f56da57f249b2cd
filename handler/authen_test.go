package handler

import (
	"net/http"
	"testing"

	"hotel_booking/constants"
	"hotel_booking/model"
	"hotel_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Post("/login", validate.Login(), Login)
	app.Post("/signup", validate.Signup(), Signup)
	return app
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "guest1", "secret123", constants.ROLE_USER, true)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/login", fiber.Map{
		"username": "guest1",
		"password": "secret123",
		"role":     constants.ROLE_USER,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "login success", body["message"])
}

// Mật khẩu đúng nhưng tài khoản đã bị vô hiệu hoá thì vẫn không vào được
func TestLoginDisabledAccountRejected(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "guest1", "secret123", constants.ROLE_USER, false)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/login", fiber.Map{
		"username": "guest1",
		"password": "secret123",
		"role":     constants.ROLE_USER,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, constants.ACCOUNT_NOT_ACTIVE, body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "guest1", "secret123", constants.ROLE_USER, true)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/login", fiber.Map{
		"username": "guest1",
		"password": "wrong-password",
		"role":     constants.ROLE_USER,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Đăng nhập theo cặp (username, role): user thường không vào được form admin
func TestLoginRoleMismatch(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "guest1", "secret123", constants.ROLE_USER, true)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/login", fiber.Map{
		"username": "guest1",
		"password": "secret123",
		"role":     constants.ROLE_ADMIN,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignupCreatesUserRole(t *testing.T) {
	db := setupTestDB(t)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/signup", fiber.Map{
		"username":        "newguest",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"fullName":        "New Guest",
		"phoneNumber":     "0788123456",
		"age":             22,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user model.User
	require.NoError(t, db.Where("username = ?", "newguest").First(&user).Error)
	assert.Equal(t, constants.ROLE_USER, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestSignupUnderageRejected(t *testing.T) {
	setupTestDB(t)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/signup", fiber.Map{
		"username":        "younggst",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"fullName":        "Young Guest",
		"phoneNumber":     "0788123456",
		"age":             17,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "age", body["keyError"])
}

func TestSignupPasswordMismatch(t *testing.T) {
	setupTestDB(t)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/signup", fiber.Map{
		"username":        "newguest",
		"password":        "secret123",
		"confirmPassword": "different",
		"fullName":        "New Guest",
		"phoneNumber":     "0788123456",
		"age":             22,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "guest1", "secret123", constants.ROLE_USER, true)
	app := newAuthApp()

	resp, err := app.Test(jsonRequest(t, "POST", "/signup", fiber.Map{
		"username":        "guest1",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"fullName":        "Another Guest",
		"phoneNumber":     "0788123456",
		"age":             22,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
