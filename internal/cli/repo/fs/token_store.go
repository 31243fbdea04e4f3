package fs

import (
	"errors"
	"os"
	"strings"
)

// TokenFSStore — файловое хранилище auth-токена для CLI.
// Путь к файлу задаётся конфигом (TOKEN_FILE / --token-file).
type TokenFSStore struct {
	Path string
}

// Save сохраняет auth-токен в файл.
func (s TokenFSStore) Save(token string) error {
	if s.Path == "" {
		return errors.New("token file path is empty")
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth-токен из файла.
func (s TokenFSStore) Load() (string, error) {
	if s.Path == "" {
		return "", errors.New("token file path is empty")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", errors.New("empty token file")
	}
	return token, nil
}

// Clear удаляет файл с токеном. Отсутствие файла не считается ошибкой.
func (s TokenFSStore) Clear() error {
	if s.Path == "" {
		return errors.New("token file path is empty")
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
