package repository

import (
	"database/sql"

	"github.com/zelcry/zelcry-api/internal/models"
)

// ChatRepository guarda el historial de chat de usuarios e invitados
type ChatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) SaveMessage(message *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, user_id, session_id, message, response)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(
		query,
		message.ID,
		nullableString(message.UserID),
		nullableString(message.SessionID),
		message.Message,
		message.Response,
	)
	return err
}

// CountUserMessages cuenta los intercambios previos de un usuario registrado
func (r *ChatRepository) CountUserMessages(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chat_messages WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

// CountSessionMessages cuenta los intercambios de una sesión de invitado,
// para aplicar la cuota de chats gratuitos
func (r *ChatRepository) CountSessionMessages(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID).Scan(&count)
	return count, err
}

// GetRecentUserMessages devuelve los últimos intercambios del usuario en
// orden cronológico, para reenviarlos como contexto de conversación
func (r *ChatRepository) GetRecentUserMessages(userID string, limit int) ([]models.ChatMessage, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), COALESCE(session_id, ''), message, response, created_at
		FROM chat_messages
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		err := rows.Scan(&msg.ID, &msg.UserID, &msg.SessionID, &msg.Message, &msg.Response, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	// Invertir para devolver en orden cronológico
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, rows.Err()
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
