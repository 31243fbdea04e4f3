package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService инкапсулирует регистрацию и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя. Пароль хранится только как bcrypt-хеш.
// Роль по умолчанию — staff; значение вне {admin, staff} — ошибка валидации.
func (s *UserService) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	var violations []string
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		violations = append(violations, "Please add a name")
	}
	if email == "" {
		violations = append(violations, "Please add an email")
	}
	if password == "" {
		violations = append(violations, "Please add a password")
	}
	if role == "" {
		role = model.RoleStaff
	}
	if !role.Valid() {
		violations = append(violations, "Role must be either admin or staff")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Violations: []string{"Email already registered"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	})
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль
// дают одну и ту же ошибку ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает пользователя по ID (для /auth/me).
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
