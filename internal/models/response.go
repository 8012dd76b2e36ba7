package models

import "github.com/polyglot-quiz/backend/internal/locale"

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status             string            `json:"status"`
	SupportedLanguages []locale.Language `json:"supportedLanguages"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
