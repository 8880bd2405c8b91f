package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"omgagents.ai/web/internal/overlay"
)

const (
	SessionCookieName = "SITE_SESSION"
	RevealCookieName  = "SITE_REVEAL"
	sessionLifetime   = 30 * 24 * time.Hour
)

// ErrInvalidSessionConfig indicates the store was given unusable keys.
var ErrInvalidSessionConfig = errors.New("session: invalid config")

// SessionData is the visitor state carried in the signed session cookie.
type SessionData struct {
	ID              string        `json:"id"`
	Locale          string        `json:"locale,omitempty"`
	CSRFToken       string        `json:"csrf,omitempty"`
	ContactOpenedAt time.Time     `json:"contactOpenedAt,omitempty"`
	Overlay         overlay.State `json:"overlay,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool
}

// MarkDirty flags the session for writing before the response goes out.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Dirty reports whether the session changed during this request.
func (s *SessionData) Dirty() bool { return s.dirty }

// SessionStore encodes sessions with securecookie.
type SessionStore struct {
	codec  *securecookie.SecureCookie
	secure bool
	now    func() time.Time
}

// NewSessionStore builds a store. An empty hashKey yields a process-ephemeral
// key, suitable for local development only; blockKey enables encryption.
func NewSessionStore(hashKey, blockKey []byte, secure bool) (*SessionStore, error) {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, fmt.Errorf("%w: unable to generate hash key", ErrInvalidSessionConfig)
		}
	}
	switch len(blockKey) {
	case 0, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: block key must be 16, 24 or 32 bytes", ErrInvalidSessionConfig)
	}
	var block []byte
	if len(blockKey) > 0 {
		block = blockKey
	}
	codec := securecookie.New(hashKey, block)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(sessionLifetime.Seconds()))
	return &SessionStore{codec: codec, secure: secure, now: time.Now}, nil
}

// Secure reports whether cookies carry the Secure attribute.
func (st *SessionStore) Secure() bool { return st.secure }

// Session loads or initializes a session and stores it in request context.
// The cookie is written just before the response header when the session
// changed, so handlers must mutate it before writing.
func (st *SessionStore) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := st.read(r)
		if sd.ID == "" {
			now := st.now().UTC()
			sd.ID = randID()
			sd.CreatedAt = now
			sd.UpdatedAt = now
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := WithSession(r.Context(), sd)

		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				st.write(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written (e.g. HEAD): persist now
		if !rw.Written() && (sd.dirty || !fromCookie) {
			st.write(w, sd)
		}
	})
}

func (st *SessionStore) read(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := st.codec.Decode(SessionCookieName, c.Value, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func (st *SessionStore) write(w http.ResponseWriter, sd *SessionData) {
	encoded, err := st.codec.Encode(SessionCookieName, sd)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  st.now().Add(sessionLifetime),
		MaxAge:   int(sessionLifetime.Seconds()),
	})
	sd.dirty = false
}

// Revealed returns the sections latched visible for this browser. The latch
// lives in its own cookie: reveal reports fire in the background and must
// never re-issue the session.
func (st *SessionStore) Revealed(r *http.Request) []string {
	c, err := r.Cookie(RevealCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	var ids []string
	if err := st.codec.Decode(RevealCookieName, c.Value, &ids); err != nil {
		return nil
	}
	return ids
}

// SetRevealed writes the reveal latch cookie.
func (st *SessionStore) SetRevealed(w http.ResponseWriter, ids []string) {
	encoded, err := st.codec.Encode(RevealCookieName, ids)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RevealCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  st.now().Add(sessionLifetime),
		MaxAge:   int(sessionLifetime.Seconds()),
	})
}

// GetSession returns session data from context
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
