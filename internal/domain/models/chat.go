package models

import "time"

type Model struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewModel(name string) *Model {
	return &Model{Name: name}
}

// Chat links a stored conversation file to its owner and the model it was held with.
type Chat struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ModelID   int64     `json:"model_id"`
	File      string    `json:"file"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChat(userID, modelID int64, file string) *Chat {
	return &Chat{
		UserID:    userID,
		ModelID:   modelID,
		File:      file,
		Timestamp: Now(),
	}
}
