package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-inventory/constants"
	"gin-inventory/middlewares"
	"gin-inventory/models"
	"gin-inventory/repositories"
	"gin-inventory/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	authController := NewAuthController(services.NewAuthService(repositories.NewAuthRepository(db)))
	itemController := NewItemController(services.NewItemService(repositories.NewItemRepository(db)))

	r := gin.New()

	authRouter := r.Group("/api/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	itemRouter := r.Group("/api/items", middlewares.SessionRequired())
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/stats", itemController.Stats)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouter.POST("", itemController.Create)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method string, path string, body any, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: fmt.Sprintf("%d", userID)})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

// registerUser は登録APIを通してユーザーを作り、払い出されたIDを返す
func registerUser(t *testing.T, r *gin.Engine, username string) uint {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"password": "secret123",
	}, 0)
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeBody(t, w)["userId"].(float64))
}

func createItem(t *testing.T, r *gin.Engine, userID uint, name string, sku string, quantity int, price float64) uint {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/items", gin.H{
		"name":     name,
		"sku":      sku,
		"quantity": quantity,
		"price":    price,
	}, userID)
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeBody(t, w)["ID"].(float64))
}
