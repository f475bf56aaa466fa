package models

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound         = errors.New("ingestion session not found")
	ErrSessionConsumed  = errors.New("ingestion session already consumed")
	ErrBadRequest       = errors.New("bad request")
	ErrUploadInProgress = errors.New("upload already in progress")
)

// Сообщения валидации формы, которые видит пользователь.
const (
	MsgEmptyTitle   = "Please enter a valid content name."
	MsgNoMaterial   = "Please select a file to upload."
	MsgUnknownError = "Unknown error"
)

// ValidationError — форма заполнена не полностью; до сети дело не доходит.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError — сервер ответил не-2xx статусом либо запрос не дошёл до сервера.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

// Detail возвращает текст ответа, а если он пуст — числовой статус.
func (e *TransportError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	if e.StatusCode != 0 {
		return strconv.Itoa(e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return MsgUnknownError
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	return fmt.Sprintf("transport: status %s", e.Detail())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError — 2xx-ответ, в котором конверт сообщает о логической ошибке.
type APIError struct {
	Message string
	Code    int
}

func (e *APIError) Error() string {
	return "api: " + e.Message
}

// NewAPIError подставляет сообщение по умолчанию, если сервер его не прислал.
func NewAPIError(message string, code int) *APIError {
	if message == "" {
		message = MsgUnknownError
	}
	return &APIError{Message: message, Code: code}
}
