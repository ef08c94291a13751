package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/searchwebservices/prestigeyachtsalliance-sub001/internal/api/handlers"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// Заголовок с email аутентифицированного пользователя
// Проставляется API gateway после проверки сессии
const HeaderUserEmail = "X-User-Email"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует заголовок X-User-Email и кладет его в context запроса
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.TrimSpace(r.Header.Get(HeaderUserEmail))
			if email == "" {
				log.Warn("Auth: missing %s header for %s %s", HeaderUserEmail, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, strings.ToLower(email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserEmail достает email пользователя из context запроса
// Пустая строка означает, что запрос не проходил через Auth
func UserEmail(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}
