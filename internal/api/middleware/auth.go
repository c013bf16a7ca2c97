package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

var (
	ErrNoToken      = errors.New("auth: missing bearer token")
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims access-токен: sub = id профиля, role = USER|OWNER
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type sessionKey struct{}

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext сессия текущего пользователя, если запрос аутентифицирован
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(domain.Session)
	return s, ok
}

// Authenticator проверяет HS256 токены, выданные сервисом аутентификации
type Authenticator struct {
	secret []byte
	issuer string
	logger Logger
}

func NewAuthenticator(secret, issuer string, logger Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// Required пропускает только запросы с валидным токеном
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.authenticate(r)
		if err != nil {
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			if errors.Is(err, ErrNoToken) {
				handlers.RespondUnauthorized(w, msgMissingToken)
			} else {
				handlers.RespondUnauthorized(w, msgInvalidToken)
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// Optional пропускает анонимные запросы, но отклоняет испорченный токен
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := a.authenticate(r)
		switch {
		case errors.Is(err, ErrNoToken):
			next.ServeHTTP(w, r)
		case err != nil:
			a.logger.Warn("%s %s - unauthorized: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
		default:
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		}
	})
}

func (a *Authenticator) authenticate(r *http.Request) (domain.Session, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Session{}, ErrNoToken
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return domain.Session{}, ErrNoToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.Subject)
	}

	// роль обязательна: без неё сессии нет
	session, err := domain.NewSession(userID, claims.Role)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return session, nil
}

// IssueToken подписывает токен для сессии
func IssueToken(secret, issuer string, s domain.Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(s.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(s.UserID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
