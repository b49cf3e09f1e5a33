package middleware

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/zelcry/zelcry-api/internal/database"
)

// setupTestRouter arma un router con una base en memoria y las rutas bajo prueba
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("GROQ_API_KEY", "")

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// Cada conexión de sqlite en memoria es una base distinta: limitar el
	// pool a una sola conexión para que todas las consultas la compartan
	db.SetMaxOpenConns(1)
	require.NoError(t, database.CreateSchema(db))

	previous := database.DB
	database.DB = db
	InitRepositories()

	t.Cleanup(func() {
		database.DB = previous
		db.Close()
	})

	router := gin.New()
	router.POST("/signup", Signup)
	router.POST("/login", Login)
	router.POST("/guest-chat", GuestChat)

	protected := router.Group("/")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/profile", GetProfile)
		protected.POST("/advisor", AdvisorQuery)
		protected.POST("/watchlist", AddToWatchlist)
		protected.POST("/alerts", CreateAlert)
	}

	return router
}

// doRequest ejecuta una petición JSON contra el router y decodifica la respuesta
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	response := map[string]interface{}{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	}

	return recorder.Code, response
}

// signupTestUser registra un usuario y devuelve su token
func signupTestUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	status, response := doRequest(t, router, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": "secreto123",
		"name":     "Ana",
	})
	require.Equal(t, http.StatusCreated, status)

	token, ok := response["token"].(string)
	require.True(t, ok)
	return token
}
