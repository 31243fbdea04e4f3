package middleware

import (
	"StockKeeper/internal/model"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName — имя cookie с JWT.
const AuthCookieName = "auth_token"

type ctxKey string

const identityKey ctxKey = "identity"

// Identity — личность, извлечённая из токена.
type Identity struct {
	UserID int64
	Role   model.Role
}

type authClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken подписывает JWT (HS256) с идентификатором и ролью пользователя.
func IssueToken(userID int64, role model.Role, secret string, ttl time.Duration) (string, error) {
	claims := authClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SetLoginCookie выпускает токен, ставит httpOnly cookie и возвращает
// сам токен для тела ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, role model.Role, secret string, ttl time.Duration) (string, error) {
	token, err := IssueToken(userID, role, secret, ttl)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
	})
	return token, nil
}

// ClearLoginCookie сбрасывает cookie. Сам токен остаётся валиден до истечения —
// сервер не ведёт учёт выданных токенов, logout носит рекомендательный характер.
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "none",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})
}

// ParseToken проверяет подпись и срок действия токена и возвращает личность.
func ParseToken(token, secret string) (Identity, error) {
	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}
	if !parsed.Valid {
		return Identity{}, jwt.ErrTokenUnverifiable
	}
	return Identity{UserID: claims.UserID, Role: model.Role(claims.Role)}, nil
}

// WithAuth извлекает токен из заголовка Authorization (Bearer) либо из cookie
// и кладёт личность в контекст. Запрос без валидного токена проходит дальше
// анонимным — отказ отдаёт RequireAuth на защищённых маршрутах.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			} else if c, err := r.Cookie(AuthCookieName); err == nil {
				token = c.Value
			}
			if token != "" {
				if id, err := ParseToken(token, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), identityKey, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentityFromContext возвращает личность из контекста запроса.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
