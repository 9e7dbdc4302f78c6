package service

import "errors"

// Ошибки, по которым HTTP-слой выбирает код ответа.
// Все прочие ошибки считаются внутренними.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrRoutingUnavailable = errors.New("routing provider unavailable")
	ErrNoRoute            = errors.New("no route found")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
