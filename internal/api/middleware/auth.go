package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "token de acceso inválido"
)

var (
	// ErrMissingToken в запросе нет заголовка Authorization
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrInvalidToken token failed verification or carries no email
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth verifies HMAC-signed bearer tokens and puts the email claim into the request context
type Auth struct {
	secret     []byte
	issuer     string
	emailClaim string
	logger     Logger
}

func NewAuth(secret, issuer, emailClaim string, logger Logger) *Auth {
	if emailClaim == "" {
		emailClaim = "email"
	}
	return &Auth{
		secret:     []byte(secret),
		issuer:     issuer,
		emailClaim: emailClaim,
		logger:     logger,
	}
}

// Required rejects requests without a valid token (401)
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := a.authenticate(r)
		if err != nil {
			a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
			if errors.Is(err, ErrMissingToken) {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCallerEmail(r.Context(), email)))
	})
}

// Optional lets anonymous requests through; a present but invalid token is still rejected
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := a.authenticate(r)
		switch {
		case errors.Is(err, ErrMissingToken):
			next.ServeHTTP(w, r)
		case err != nil:
			a.logger.Warn("%s %s - Invalid optional token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
		default:
			next.ServeHTTP(w, r.WithContext(WithCallerEmail(r.Context(), email)))
		}
	})
}

func (a *Auth) authenticate(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", errors.Join(ErrInvalidToken, err)
	}

	email, _ := claims[a.emailClaim].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidToken
	}
	return email, nil
}
