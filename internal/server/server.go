/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the advisor,
the session store and the renderer into the router.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"LifestyleAdvisor/internal/assessment"
	"LifestyleAdvisor/internal/config"
	"LifestyleAdvisor/internal/geminiservice"
	"LifestyleAdvisor/internal/session"
	"LifestyleAdvisor/internal/utility"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// trustProxy selects X-Forwarded-For over the peer address as the client IP.
	trustProxy bool

	// configErr is the start-up advisor configuration failure, if any.
	// It is shown on every page and fails every submission.
	configErr error

	controller *assessment.Controller
	sessions   *session.Store
	limiter    *utility.SubmitLimiter
	inflight   singleflight.Group // advisor calls, keyed by session id
	startedAt  time.Time
}

// New builds a Server around advisor. configErr, when non-nil, is the reason
// the real advisor could not be built.
func New(cfg *config.Config, advisor geminiservice.Advisor, configErr error) *Server {
	return &Server{
		port:       cfg.Port,
		trustProxy: cfg.TrustProxy,
		configErr:  configErr,
		controller: assessment.NewController(advisor),
		sessions: session.NewStore(session.Options{
			Secret:      cfg.SessionSecret,
			Secure:      cfg.IsProduction(),
			MaxSessions: cfg.SessionMax,
			TTL:         cfg.SessionTTL,
		}),
		limiter:   utility.NewSubmitLimiter(cfg.SubmitRate, cfg.SubmitBurst),
		startedAt: time.Now(),
	}
}

// NewServer builds the Gemini client from cfg and returns a configured *http.Server.
// A missing API key does not stop the server; it is surfaced in the UI instead.
func NewServer(cfg *config.Config) *http.Server {
	var advisor geminiservice.Advisor
	client, err := geminiservice.NewClient(cfg.Gemini)
	if err != nil {
		log.Error().Err(err).Msg("Gemini advisor is not configured")
		advisor = geminiservice.Unconfigured(err)
	} else {
		advisor = client
	}

	newApp := New(cfg, advisor, err)

	return &http.Server{
		Addr:        fmt.Sprintf(":%d", newApp.port),
		Handler:     newApp.RegisterRoutes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// Submissions block on the Gemini call.
		WriteTimeout: cfg.Gemini.Timeout + 15*time.Second,
	}
}
