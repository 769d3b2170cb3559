/*
Package session keeps each visitor's assessment state in process memory,
keyed by an id carried in a signed cookie. Nothing survives a restart.
*/
package session

import (
	"fmt"
	"net/http"
	"time"

	"LifestyleAdvisor/internal/assessment"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	CookieName = "advisor_session"
	sidKey     = "sid"

	DefaultMaxSessions = 10000
	DefaultTTL         = 2 * time.Hour
)

// Options configures a Store.
type Options struct {
	Secret      []byte
	Secure      bool
	MaxSessions int
	TTL         time.Duration
}

// Store maps session cookies to assessment state.
type Store struct {
	cookies *sessions.CookieStore
	states  *expirable.LRU[string, assessment.State]
}

// NewStore builds a Store. States beyond MaxSessions are evicted oldest
// first, and any state idle for TTL is dropped.
func NewStore(opts Options) *Store {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	cookies := sessions.NewCookieStore(opts.Secret)
	cookies.MaxAge(int(opts.TTL.Seconds()))
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = opts.Secure
	cookies.Options.SameSite = http.SameSiteLaxMode

	onEvict := func(id string, _ assessment.State) {
		log.Debug().Str("session_id", id).Msg("Session state evicted")
	}

	return &Store{
		cookies: cookies,
		states:  expirable.NewLRU[string, assessment.State](opts.MaxSessions, onEvict, opts.TTL),
	}
}

// Load returns the request's session id and a copy of its state. Visitors
// without a valid cookie, or whose state has expired, get a new id and a
// fresh state.
func (s *Store) Load(c echo.Context) (string, assessment.State) {
	sess, err := s.cookies.Get(c.Request(), CookieName)
	if err != nil {
		log.Debug().Err(err).Msg("Discarding unreadable session cookie")
	}

	if id, ok := sess.Values[sidKey].(string); ok && id != "" {
		if st, found := s.states.Get(id); found {
			return id, st
		}
	}
	return uuid.New().String(), assessment.NewState()
}

// Save stores st under id and writes the session cookie. It must run before
// the response body is written.
func (s *Store) Save(c echo.Context, id string, st assessment.State) error {
	sess, err := s.cookies.Get(c.Request(), CookieName)
	if err != nil {
		log.Debug().Err(err).Msg("Replacing unreadable session cookie")
	}
	sess.Values[sidKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to write session cookie: %w", err)
	}

	s.states.Add(id, st)
	return nil
}

// Len reports how many sessions currently hold state.
func (s *Store) Len() int {
	return s.states.Len()
}
