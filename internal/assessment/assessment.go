/*
Package assessment holds the per-session view state of the lifestyle advisor
and the transitions between the form and the results view.
*/
package assessment

import (
	"context"
	"fmt"

	"LifestyleAdvisor/internal/geminiservice"
	"LifestyleAdvisor/internal/lifestyle"
	"github.com/rs/zerolog"
)

// View is which page a session is on.
type View string

const (
	ViewForm    View = "form"
	ViewResults View = "results"
)

// Result is the outcome of one successful submission.
type Result struct {
	Score          int                   `json:"score"`
	Recommendation string                `json:"recommendation"`
	Profile        lifestyle.UserProfile `json:"profile"`
}

// Level bands the result's score.
func (r Result) Level() lifestyle.Level {
	return lifestyle.LevelFor(r.Score)
}

// State is one session's view state. The zero value is not valid; use NewState.
type State struct {
	View   View    `json:"view"`
	Result *Result `json:"result,omitempty"`
}

// NewState returns the state a fresh session starts in.
func NewState() State {
	return State{View: ViewForm}
}

// ShowForm reports whether the form should be rendered.
func (s State) ShowForm() bool {
	return s.View != ViewResults
}

// Controller drives the form/results transitions.
type Controller struct {
	advisor geminiservice.Advisor
}

// NewController returns a Controller that asks advisor for recommendations.
func NewController(advisor geminiservice.Advisor) *Controller {
	return &Controller{advisor: advisor}
}

// Submit computes the score for p, asks the advisor for a recommendation and,
// only when both succeed, moves s to the results view. On error s is left
// exactly as it was.
func (c *Controller) Submit(ctx context.Context, log *zerolog.Logger, s *State, p lifestyle.UserProfile) error {
	prompt := geminiservice.BuildAdvisorPrompt(p)

	text, err := c.advisor.GenerateRecommendation(ctx, log, prompt)
	if err != nil {
		return fmt.Errorf("submit assessment: %w", err)
	}

	score := lifestyle.Score(p)
	s.Result = &Result{
		Score:          score,
		Recommendation: text,
		Profile:        p,
	}
	s.View = ViewResults

	log.Info().Int("score", score).Str("level", lifestyle.LevelFor(score).Name).Msg("Assessment completed")
	return nil
}

// Reset returns s to the form view and drops any stored result.
func (c *Controller) Reset(s *State) {
	s.View = ViewForm
	s.Result = nil
}
