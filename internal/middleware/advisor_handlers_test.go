package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcry/zelcry-api/internal/database"
)

func TestAdvisorQueryAnswersAndAwardsXP(t *testing.T) {
	router := setupTestRouter(t)
	token := signupTestUser(t, router, "ana@example.com")

	status, response := doRequest(t, router, http.MethodPost, "/advisor", token, map[string]string{
		"message": "help",
	})
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, response["response"], "I'm Beacon")
	assert.Equal(t, 2.0, response["xp_earned"])

	status, profile := doRequest(t, router, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, status)

	level := profile["level"].(map[string]interface{})
	assert.Equal(t, 52.0, level["xp_points"])
}

func TestAdvisorFallbackUsesProfile(t *testing.T) {
	router := setupTestRouter(t)
	token := signupTestUser(t, router, "ana@example.com")

	status, response := doRequest(t, router, http.MethodPost, "/advisor", token, map[string]string{
		"message": "buen día",
	})
	require.Equal(t, http.StatusOK, status)

	// La respuesta por defecto saluda por nombre y muestra el perfil
	assert.Contains(t, response["response"], "Hey Ana!")
	assert.Contains(t, response["response"], "Low risk")
}

func TestGuestChatEnforcesQuota(t *testing.T) {
	t.Setenv("GUEST_CHAT_LIMIT", "2")
	router := setupTestRouter(t)

	// Primer mensaje: se genera la sesión y queda un mensaje disponible
	status, response := doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, response["limit_reached"])
	assert.Equal(t, 1.0, response["messages_left"])

	sessionID, ok := response["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, sessionID)

	// Segundo mensaje agota la cuota
	status, response = doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{
		"message":    "another question",
		"session_id": sessionID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, response["limit_reached"])
	assert.Equal(t, 0.0, response["messages_left"])

	// El tercer mensaje ya no se procesa: invita a registrarse
	status, response = doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{
		"message":    "one more",
		"session_id": sessionID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, response["limit_reached"])
	assert.Contains(t, response["response"], "Sign up")

	// El mensaje rechazado no se guarda: la cuota no sigue creciendo
	var count int
	err := database.DB.QueryRow(`SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGuestChatSessionsAreIndependent(t *testing.T) {
	t.Setenv("GUEST_CHAT_LIMIT", "1")
	router := setupTestRouter(t)

	status, first := doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, first["limit_reached"])

	// Otra sesión arranca con su propia cuota
	status, second := doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{
		"message": "hello again",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, second["limit_reached"])
	assert.NotEqual(t, first["session_id"], second["session_id"])
}

func TestGuestChatRequiresMessage(t *testing.T) {
	router := setupTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/guest-chat", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
}
