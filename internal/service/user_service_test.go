package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Name: "John", Email: "john@x.com", Role: model.RoleStaff}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль должен быть bcrypt-хешем, а не исходной строкой
			return u.Email == "john@x.com" && u.Password != "" && u.Password != "p@ss" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("p@ss")) == nil
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "John", "john@x.com", "p@ss", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		assert.Equal(t, model.RoleStaff, user.Role)
		m.AssertExpectations(t)
	})

	t.Run("validation error when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@x.com").Return(&model.User{ID: 1, Email: "john@x.com"}, nil).Once()

		user, err := svc.Register(ctx, "John", "john@x.com", "p@ss", "")
		assert.Nil(t, user)
		_, isValidation := AsValidationError(err)
		assert.True(t, isValidation)
		m.AssertExpectations(t)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		m.ExpectedCalls = nil

		user, err := svc.Register(ctx, "", "", "", "")
		assert.Nil(t, user)
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Contains(t, ve.Violations, "Please add a name")
			assert.Contains(t, ve.Violations, "Please add an email")
			assert.Contains(t, ve.Violations, "Please add a password")
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		m.ExpectedCalls = nil

		user, err := svc.Register(ctx, "John", "j@x.com", "p", model.Role("superuser"))
		assert.Nil(t, user)
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Contains(t, ve.Violations, "Role must be either admin or staff")
		}
	})

	t.Run("explicit admin role accepted", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "root@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 11, Email: "root@x.com", Role: model.RoleAdmin}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleAdmin
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "Root", "root@x.com", "p", model.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		m.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: 2, Email: "alice@x.com", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@x.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: 2, Email: "alice@x.com", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@x.com", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown email gives the same error", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "nobody@x.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		user, err := svc.Login(ctx, "nobody@x.com", "whatever")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}
