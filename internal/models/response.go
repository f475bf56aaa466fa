package models

import (
	"encoding/json"
	"strings"
)

// APIResponse — общий конверт ответов ingestion API.
type APIResponse struct {
	IsSuccess bool            `json:"is_success"`
	Message   string          `json:"message,omitempty"`
	Code      int             `json:"code,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// OK собирает успешный конверт; nil-payload опускается.
func OK(payload any) (APIResponse, error) {
	resp := APIResponse{IsSuccess: true}
	if payload == nil {
		return resp, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return APIResponse{}, err
	}
	resp.Payload = raw
	return resp, nil
}

// Fail собирает конверт с логической ошибкой.
func Fail(message string, code int) APIResponse {
	return APIResponse{IsSuccess: false, Message: message, Code: code}
}

// PayloadString возвращает payload, если это JSON-строка не из одних пробелов.
func (r APIResponse) PayloadString() (string, bool) {
	if len(r.Payload) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Payload, &s); err != nil || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
