package errors

import "net/http"

var (
	// ErrInvalidQuery - текстовый запрос пуст или содержит сентинел "undefined"
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid request",
		http.StatusBadRequest,
	)

	// ErrInvalidRequest - тело запроса не распарсилось или не прошло валидацию
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// ErrUpstream - запрос к Google API не удался или ответ не распарсился.
	// Сообщение намеренно общее: причина пишется в лог, не наружу.
	ErrUpstream = New(
		"UPSTREAM_ERROR",
		"Something went wrong. Try again later",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
