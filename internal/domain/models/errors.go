package models

import "errors"

var (
	ErrUserExists       = errors.New("user already exists")
	ErrInvalidReference = errors.New("referenced user or model does not exist")
)
