package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/config"
)

type sessionContextKey string

const SessionKey = sessionContextKey("session")

// Session is the opaque per-browser identity. It owns exactly one cart and
// is the owner reference stamped onto orders. No login is involved; the id
// is minted on first contact and carried in a signed cookie.
type Session struct {
	ID string
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type SessionMiddleware struct {
	jwtKey     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionMiddleware(cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		jwtKey:     []byte(cfg.Session.JWTKey),
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
		secure:     cfg.Env == "production",
	}
}

// WithSession resolves the caller's session from the signed cookie, minting
// a fresh one when the cookie is absent, expired or tampered with.
func (m *SessionMiddleware) WithSession(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		session, ok := m.sessionFromCookie(r)
		if !ok {
			session = &Session{ID: uuid.NewString()}

			if err := m.setCookie(w, session); err != nil {
				logger.Error("Failed to issue session cookie", slog.String("error", err.Error()))
				http.Error(w, "failed to establish session", http.StatusInternalServerError)

				return
			}

			logger.Debug("New session issued", slog.String("session_id", session.ID))
		}

		requestLogger := logger.With(slog.String("session_id", session.ID))

		ctx := context.WithValue(r.Context(), SessionKey, session)
		ctx = context.WithValue(ctx, LoggerKey, requestLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *SessionMiddleware) sessionFromCookie(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return m.jwtKey, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, false
	}

	return &Session{ID: claims.SessionID}, true
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, session *Session) error {
	claims := &sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.jwtKey)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(SessionKey).(*Session)

	return session, ok
}
