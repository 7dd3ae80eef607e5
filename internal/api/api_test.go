package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"rental_system/internal/db"
	"rental_system/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

var testDBSeq atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full router over a fresh in-memory SQLite database.
// Caching is off (nil Redis client).
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	users := repository.NewUserRepository(gdb, false)
	equipment := repository.NewEquipmentRepository(gdb)
	return NewRouter(users, equipment, nil, testJWTSecret)
}

// doJSON performs one request against the router. An empty token omits the
// Authorization header.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// uintStr formats an ID for use in a path
func uintStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// registerAndLogin creates a user and returns a token for it
func registerAndLogin(t *testing.T, r *gin.Engine, email, password, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"email": email, "password": password, "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
