package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RequestJSON sends a JSON request. If token is non-empty, it is passed as a bearer header.
func RequestJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	data, _ := io.ReadAll(resp.Body)
	return resp, data, nil
}

// PostJSON — JSON POST запрос.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return RequestJSON(http.MethodPost, url, payload, token)
}

// GetJSON — GET запрос с токеном.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return RequestJSON(http.MethodGet, url, nil, token)
}

// ErrorMessage извлекает поле error из конверта {success:false, error}.
// Если тело не распарсилось, возвращает его как есть.
func ErrorMessage(body []byte) string {
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return strings.TrimSpace(string(body))
}

// TokenFromBody извлекает поле token из ответа register/login.
func TokenFromBody(body []byte) (string, error) {
	var env struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", fmt.Errorf("no token in response")
	}
	return env.Token, nil
}
