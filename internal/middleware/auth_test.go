package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/auth"
	"github.com/circuitlab-dev/circuitlab/internal/store"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.DB = gormDB
	require.NoError(t, db.MigrateDatabase())

	t.Cleanup(func() {
		_ = sqlDB.Close()
		db.DB = nil
	})
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(ctx *gin.Context) {
		user := ctx.MustGet(types.ContextUserKey).(AuthenticatedUser)
		ctx.JSON(http.StatusOK, user)
	})

	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body["error"]
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization token is required", errorMessage(t, w))
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	// Rejected before any token parsing happens.
	w := doRequest(r, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header format must be Bearer {token}", errorMessage(t, w))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	w := doRequest(r, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, w))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	token, err := auth.GenerateToken("a@x.com", -1*time.Second)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, w))
}

func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	// Valid signature, but no user behind the email.
	token, err := auth.GenerateToken("ghost@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not found", errorMessage(t, w))
}

func TestAuthMiddleware_Success(t *testing.T) {
	setupTest(t)
	r := protectedRouter()

	created, err := store.CreateUser("a@x.com", "Ada", "password123")
	require.NoError(t, err)

	token, err := auth.GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var user AuthenticatedUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.Active)
}
