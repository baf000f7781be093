package session

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

const (
	CookieName = "evaani_session"
	ctxKey     = "session"
)

// Data is the per-browser-session state: the admin flag set after a
// successful login, the hero carousel position, and the offer popup
// disclosure state. It lives server-side; the cookie only carries the
// session id and expires with the browser session.
type Data struct {
	IsAdmin        bool
	AdminTimestamp time.Time

	CarouselSlide int

	SeenOffers        []int
	CurrentOfferIndex int
	OffersCompleted   bool
	OfferPhase        string
	OfferNotBefore    int64 // unix millis
}

type Session struct {
	ID string

	mu       sync.Mutex
	data     Data
	lastSeen time.Time
}

// Get returns a copy; the seen set is cloned so callers cannot alias
// the stored slice.
func (s *Session) Get() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data
	d.SeenOffers = append([]int(nil), s.data.SeenOffers...)
	return d
}

// Update applies fn under the session lock. Every popup transition and
// carousel move persists through here.
func (s *Session) Update(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Manager hands out sessions keyed by a signed cookie. It is injected
// into the controllers so tests can drive state without real cookies.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	codec    *securecookie.SecureCookie
	idleTTL  time.Duration
	now      func() time.Time
	stop     chan struct{}
}

func NewManager(hashKey []byte) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		codec:    securecookie.New(hashKey, nil),
		idleTTL:  12 * time.Hour,
		now:      time.Now,
	}
}

// Middleware attaches the request's session to the gin context,
// creating one (and setting the cookie) on first contact.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.fromCookie(c)
		if sess == nil {
			sess = m.create()
			if encoded, err := m.codec.Encode(CookieName, sess.ID); err == nil {
				// MaxAge 0 -> session cookie, gone when the browser closes.
				c.SetCookie(CookieName, encoded, 0, "/", "", false, true)
			}
		}
		sess.mu.Lock()
		sess.lastSeen = m.now()
		sess.mu.Unlock()

		c.Set(ctxKey, sess)
		c.Next()
	}
}

func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(ctxKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*Session)
	return sess
}

func (m *Manager) fromCookie(c *gin.Context) *Session {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return nil
	}
	var id string
	if err := m.codec.Decode(CookieName, raw, &id); err != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

func (m *Manager) create() *Session {
	sess := &Session{ID: uuid.NewString(), lastSeen: m.now()}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Lookup is used by tests to reach a session directly.
func (m *Manager) Lookup(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// EncodeCookie builds a valid cookie value for an existing session id.
func (m *Manager) EncodeCookie(id string) (string, error) {
	return m.codec.Encode(CookieName, id)
}

// StartCleanup prunes sessions idle past the TTL.
func (m *Manager) StartCleanup(interval time.Duration) {
	m.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.prune()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *Manager) StopCleanup() {
	if m.stop != nil {
		close(m.stop)
	}
}

func (m *Manager) prune() {
	cutoff := m.now().Add(-m.idleTTL)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(m.sessions, id)
		}
	}
}
