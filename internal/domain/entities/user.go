package entities

import "time"

// User represents bot user.
type User struct {
	ID           int64 // Telegram user ID
	ChatID       int64
	Username     string
	FirstName    string
	LanguageCode string
	CreatedAt    time.Time
	LastSeenAt   time.Time
}

func NewUser(id, chatID int64) *User {
	now := time.Now().UTC()
	return &User{
		ID:         id,
		ChatID:     chatID,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}
