package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel_booking/database"
	"hotel_booking/helper"
	"hotel_booking/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)

	// handler đọc qua global như ở runtime
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authHeader(t *testing.T, user model.User) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createUser(t *testing.T, db *gorm.DB, username, password, role string, active bool) model.User {
	t.Helper()
	hashed, err := helper.HashPassword(password)
	require.NoError(t, err)

	user := model.User{
		Username:    username,
		Password:    hashed,
		Role:        role,
		FullName:    "Test " + username,
		PhoneNumber: "0788000000",
		Age:         30,
		IsActive:    active,
	}
	require.NoError(t, db.Create(&user).Error)
	if !active {
		// gorm bỏ qua zero value với cột có default:true nên phải set lại
		require.NoError(t, db.Model(&user).Update("is_active", false).Error)
	}
	return user
}

func mustDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}
