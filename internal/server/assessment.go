package server

import (
	"net/http"

	"LifestyleAdvisor/internal/assessment"
	"LifestyleAdvisor/internal/lifestyle"
	"github.com/labstack/echo/v4"
)

const (
	msgFetchFailed = "Unable to fetch recommendations. Please check your API key and try again."
	msgInvalidForm = "Please correct the highlighted fields."
	msgBadRequest  = "The form submission could not be read. Please try again."
	msgThrottled   = "Too many submissions from your network. Please wait a minute and try again."
)

// indexHandler shows the form or the results, depending on the session's view.
func (s *Server) indexHandler(c echo.Context) error {
	id, st := s.sessions.Load(c)
	if err := s.sessions.Save(c, id, st); err != nil {
		requestLogger(c).Error().Err(err).Msg("indexHandler: failed to save session")
	}

	if st.ShowForm() {
		return s.renderForm(c, http.StatusOK, lifestyle.DefaultProfile(), formPage{})
	}
	return s.renderResults(c, st.Result)
}

// submitAssessmentHandler scores the submitted profile and fetches advice.
// Only a complete success moves the session to the results view.
func (s *Server) submitAssessmentHandler(c echo.Context) error {
	logger := requestLogger(c)
	id, st := s.sessions.Load(c)

	if !st.ShowForm() {
		// Already showing results; a second post of the same form is ignored.
		return c.Redirect(http.StatusSeeOther, "/")
	}

	profile := lifestyle.UserProfile{}
	if err := c.Bind(&profile); err != nil {
		logger.Warn().Err(err).Msg("submitAssessmentHandler: failed to bind form")
		return s.renderFormWithSession(c, id, st, http.StatusBadRequest, lifestyle.DefaultProfile(), formPage{Error: msgBadRequest})
	}
	if profile.ExerciseTypes == nil {
		profile.ExerciseTypes = []string{}
	}

	if err := c.Validate(&profile); err != nil {
		logger.Info().Err(err).Msg("submitAssessmentHandler: invalid form values")
		return s.renderFormWithSession(c, id, st, http.StatusUnprocessableEntity, profile, formPage{
			Error:       msgInvalidForm,
			FieldErrors: lifestyle.FieldErrors(err),
		})
	}

	ip := c.RealIP()
	if !s.limiter.Allow(ip) {
		logger.Warn().Str("ip", ip).Msg("submitAssessmentHandler: submission throttled")
		return s.renderFormWithSession(c, id, st, http.StatusTooManyRequests, profile, formPage{Error: msgThrottled})
	}

	// Concurrent posts from one session share a single advisor call.
	v, err, shared := s.inflight.Do(id, func() (interface{}, error) {
		next := st
		if err := s.controller.Submit(c.Request().Context(), logger, &next, profile); err != nil {
			return nil, err
		}
		return next, nil
	})
	if shared {
		logger.Debug().Msg("submitAssessmentHandler: joined in-flight submission")
	}
	if err != nil {
		logger.Error().Err(err).Msg("submitAssessmentHandler: recommendation failed")
		return s.renderFormWithSession(c, id, st, http.StatusBadGateway, profile, formPage{
			Error:       msgFetchFailed,
			ErrorDetail: err.Error(),
		})
	}
	st = v.(assessment.State)

	if err := s.sessions.Save(c, id, st); err != nil {
		logger.Error().Err(err).Msg("submitAssessmentHandler: failed to save session")
		return c.String(http.StatusInternalServerError, "could not save session")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// resetAssessmentHandler starts a new assessment.
func (s *Server) resetAssessmentHandler(c echo.Context) error {
	id, st := s.sessions.Load(c)
	s.controller.Reset(&st)

	if err := s.sessions.Save(c, id, st); err != nil {
		requestLogger(c).Error().Err(err).Msg("resetAssessmentHandler: failed to save session")
		return c.String(http.StatusInternalServerError, "could not save session")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderFormWithSession saves the unchanged state so the visitor keeps their
// cookie, then re-renders the form.
func (s *Server) renderFormWithSession(c echo.Context, id string, st assessment.State, status int, p lifestyle.UserProfile, page formPage) error {
	if err := s.sessions.Save(c, id, st); err != nil {
		requestLogger(c).Error().Err(err).Msg("failed to save session")
	}
	return s.renderForm(c, status, p, page)
}

func (s *Server) renderForm(c echo.Context, status int, p lifestyle.UserProfile, page formPage) error {
	page.ConfigError = s.configErrorText()
	page.Schema = lifestyle.Schema()
	page.Profile = p
	return c.Render(status, "form.html", page)
}

func (s *Server) renderResults(c echo.Context, r *assessment.Result) error {
	return c.Render(http.StatusOK, "results.html", resultsPage{
		ConfigError: s.configErrorText(),
		Result:      r,
		Level:       r.Level(),
		Report:      renderMarkdown(r.Recommendation),
		Tabs:        resultTabs,
	})
}

func (s *Server) configErrorText() string {
	if s.configErr == nil {
		return ""
	}
	return s.configErr.Error()
}
