package server

import (
	"net/http"
	"time"

	"LifestyleAdvisor/internal/lifestyle"
	"LifestyleAdvisor/web"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = s.ipExtractor()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(LoggerMiddleware)

	e.StaticFS("/static", echo.MustSubFS(web.Public, "public"))

	e.Renderer = newTemplateRenderer()
	e.Validator = lifestyle.NewValidator()

	e.GET("/", s.indexHandler)
	e.POST("/assessment", s.submitAssessmentHandler)
	e.POST("/assessment/reset", s.resetAssessmentHandler)
	e.GET("/health", s.healthHandler)

	return e
}

// ipExtractor decides where c.RealIP() comes from. Client headers are ignored
// unless a trusted proxy on a loopback or private address sets them.
func (s *Server) ipExtractor() echo.IPExtractor {
	if !s.trustProxy {
		return echo.ExtractIPDirect()
	}
	return echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
}

// healthHandler reports process and host status.
func (s *Server) healthHandler(c echo.Context) error {
	stats := map[string]interface{}{
		"status":             "up",
		"advisor_configured": s.configErr == nil,
		"active_sessions":    s.sessions.Len(),
		"uptime_seconds":     int64(time.Since(s.startedAt).Seconds()),
	}

	if v, err := mem.VirtualMemory(); err == nil {
		stats["memory_used_percent"] = v.UsedPercent
	}
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		stats["cpu_percent"] = cpuPercent[0]
	}
	if s.configErr != nil {
		stats["message"] = "Gemini API key is missing; submissions will fail."
	}

	return c.JSON(http.StatusOK, stats)
}

// LoggerMiddleware attaches a request-scoped logger carrying the request id.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

// requestLogger returns the logger installed by LoggerMiddleware, or the
// global logger when none is set.
func requestLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get("logger").(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}
