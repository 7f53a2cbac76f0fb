package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dictchannels/portal/internal/config"
)

const (
	sessionKeyTpl = "session:%s"
	flashKeyTpl   = "flash:%s"
	tokenPrefix   = "sess-"

	// Flash messages outlive at most one redirect; a short TTL keeps
	// orphaned ones from accumulating.
	flashTTL = 5 * time.Minute
)

var ErrNoSession = errors.New("session: not found")

// Principal identifies the signed-in account a session belongs to.
type Principal struct {
	StudentID string
	Role      string
}

const RoleStudent = "student"

type Manager struct {
	redis      *redis.Client
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(client *redis.Client, cfg config.SessionConfig) *Manager {
	return &Manager{
		redis:      client,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

func generateToken() (string, error) {
	randomBytes := make([]byte, 24)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return tokenPrefix + hex.EncodeToString(randomBytes), nil
}

// Create opens a new session for the principal and sets the cookie.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, p Principal) error {
	token, err := generateToken()
	if err != nil {
		return err
	}

	key := fmt.Sprintf(sessionKeyTpl, token)
	pipe := m.redis.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"student_id":       p.StudentID,
		"role":             p.Role,
		"created_dttm_utc": time.Now().UTC().Format(time.RFC3339),
	})
	pipe.Expire(ctx, key, m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get resolves the request's session cookie to its principal. Returns
// ErrNoSession when there is no cookie or the token has expired.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Principal, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	key := fmt.Sprintf(sessionKeyTpl, cookie.Value)
	values, err := m.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNoSession
	}

	return &Principal{
		StudentID: values["student_id"],
		Role:      values["role"],
	}, nil
}

// Destroy removes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil {
		key := fmt.Sprintf(sessionKeyTpl, cookie.Value)
		if err := m.redis.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// PushFlash queues a one-shot message shown on the next page render.
// Flash state is keyed by session token; anonymous visitors get a
// short-lived flash cookie instead.
func (m *Manager) PushFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, kind, text string) error {
	token := m.flashToken(w, r)

	key := fmt.Sprintf(flashKeyTpl, token)
	pipe := m.redis.Pipeline()
	pipe.RPush(ctx, key, kind+"|"+text)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push flash: %w", err)
	}
	return nil
}

// PopFlashes drains and returns all queued flash messages for the request.
func (m *Manager) PopFlashes(ctx context.Context, r *http.Request) ([]Flash, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return nil, nil
	}

	key := fmt.Sprintf(flashKeyTpl, cookie.Value)
	raw, err := m.redis.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read flashes: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if err := m.redis.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("failed to clear flashes: %w", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, entry := range raw {
		flashes = append(flashes, parseFlash(entry))
	}
	return flashes, nil
}

// Flash is a one-shot notice rendered after a redirect.
type Flash struct {
	Kind string // success, error, info
	Text string
}

func parseFlash(entry string) Flash {
	for i := 0; i < len(entry); i++ {
		if entry[i] == '|' {
			return Flash{Kind: entry[:i], Text: entry[i+1:]}
		}
	}
	return Flash{Kind: "info", Text: entry}
}

// flashToken reuses the session cookie when present, otherwise mints a
// short-lived anonymous one so visitors see their confirmation notices.
func (m *Manager) flashToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	token, err := generateToken()
	if err != nil {
		// rand failure leaves the notice unset; the redirect still works
		return "anonymous"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(flashTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

func (m *Manager) Close() error {
	if m.redis != nil {
		return m.redis.Close()
	}
	return nil
}
