package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser возвращает пользователя с проставленными UTC-временами создания и обновления.
func NewUser(name, username string) *User {
	now := Now()
	return &User{
		Name:      name,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Now is the timestamp source for every entity default.
func Now() time.Time {
	return time.Now().UTC()
}
