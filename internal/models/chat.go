package models

import "time"

// ChatMessage guarda un intercambio del chat. UserID está vacío para
// invitados, que se identifican por SessionID.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
