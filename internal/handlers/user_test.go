package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advertapp/internal/models"
	"advertapp/internal/repository"
	"advertapp/internal/services"
	"advertapp/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.RegisterCustomValidators()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Advertisement{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	handler := NewUserHandler(userService)

	r := gin.New()
	r.GET("/user/", handler.ListUsers)
	r.GET("/user/:id", handler.GetUser)
	r.POST("/user/", handler.CreateUser)

	return userTestEnv{
		db:          db,
		router:      r,
		userService: userService,
	}
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/user/", map[string]string{
		"username": "newuser",
		"password": "Abcdef1!",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "OK", response["status"])
	require.Positive(t, response["user_id"])
}

func TestUserHandler_CreateUserDuplicate(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/user/", map[string]string{
		"username": "newuser",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/user/", map[string]string{
		"username": "newuser",
		"password": "Ghijkl2?",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "ERROR", response["status"])
	require.Equal(t, "user already exists", response["message"])
}

func TestUserHandler_CreateUserWeakPassword(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/user/", map[string]string{
		"username": "newuser",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Status  string                  `json:"status"`
		Message []validation.FieldError `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "ERROR", response.Status)
	require.Len(t, response.Message, 1)
	require.Equal(t, "password", response.Message[0].Field)
	require.Equal(t, "password is too short", response.Message[0].Message)
}

func TestUserHandler_CreateUserAggregatesViolations(t *testing.T) {
	env := setupUserTestEnv(t)

	w := postJSON(t, env.router, "/user/", map[string]string{
		"username": "x",
		"password": "weakpassword1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Status  string                  `json:"status"`
		Message []validation.FieldError `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Message, 2)
	require.Equal(t, "username", response.Message[0].Field)
	require.Equal(t, "password", response.Message[1].Field)
}

func TestUserHandler_GetUserNotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/user/999", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "ERROR", response["status"])
	require.Equal(t, "user is not found", response["message"])
}

func TestUserHandler_GetUser(t *testing.T) {
	env := setupUserTestEnv(t)

	email := "detail@example.com"
	user, err := env.userService.Register(services.RegisterInput{
		Username: "detail-user",
		Password: "Abcdef1!",
		Email:    &email,
	})
	require.NoError(t, err)

	ad := &models.Advertisement{Title: "bike", Description: "red bike", UserID: user.ID}
	require.NoError(t, env.db.Create(ad).Error)

	req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Advertisements []struct {
			ID    uint64 `json:"id"`
			Title string `json:"title"`
		} `json:"advertisements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "detail-user", response.Username)
	require.Equal(t, email, response.Email)
	require.Len(t, response.Advertisements, 1)
	require.Equal(t, "bike", response.Advertisements[0].Title)

	// Password hash must never appear in the response.
	require.NotContains(t, w.Body.String(), "password")
}

func TestUserHandler_ListUsers(t *testing.T) {
	env := setupUserTestEnv(t)

	user, err := env.userService.Register(services.RegisterInput{
		Username: "lister",
		Password: "Abcdef1!",
	})
	require.NoError(t, err)

	for _, title := range []string{"first", "second"} {
		ad := &models.Advertisement{Title: title, Description: "d", UserID: user.ID}
		require.NoError(t, env.db.Create(ad).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Users []struct {
			ID             uint64 `json:"id"`
			Name           string `json:"name"`
			Advertisements int    `json:"advertisements"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Users, 1)
	require.Equal(t, "lister", response.Users[0].Name)
	require.Equal(t, 2, response.Users[0].Advertisements)
}
