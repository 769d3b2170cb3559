package server

import (
	"bytes"
	"html/template"
	"io"

	"LifestyleAdvisor/internal/assessment"
	"LifestyleAdvisor/internal/lifestyle"
	"LifestyleAdvisor/web"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// TemplateRenderer is a custom html/template renderer for Echo framework
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func newTemplateRenderer() *TemplateRenderer {
	funcs := template.FuncMap{
		"intCtl":    newIntControl,
		"choiceCtl": newChoiceControl,
	}
	return &TemplateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")),
	}
}

type intControl struct {
	Field lifestyle.IntField
	Value int
	Error string
}

func newIntControl(f lifestyle.IntField, v int, errs map[string]string) intControl {
	return intControl{Field: f, Value: v, Error: errs[f.Name]}
}

type choiceControl struct {
	Field lifestyle.ChoiceField
	Value string
	Error string
}

func newChoiceControl(f lifestyle.ChoiceField, v string, errs map[string]string) choiceControl {
	return choiceControl{Field: f, Value: v, Error: errs[f.Name]}
}

// resultTab frames the same recommendation text for one results tab.
type resultTab struct {
	ID      string
	Label   string
	Heading string
	Tip     *tabTip
}

type tabTip struct {
	Kind string
	Text string
}

var resultTabs = []resultTab{
	{ID: "overview", Label: "📊 Full Report", Heading: "🎯 Your Personalized Recommendations"},
	{ID: "nutrition", Label: "🥗 Nutrition", Heading: "🥗 Nutrition Guidelines",
		Tip: &tabTip{Kind: "info", Text: "💡 Tip: Distribute your meals evenly throughout the day and stay hydrated!"}},
	{ID: "fitness", Label: "💪 Fitness", Heading: "💪 Activity Overview",
		Tip: &tabTip{Kind: "success", Text: "🎯 Goal: Aim for 150 minutes of moderate activity per week!"}},
	{ID: "wellness", Label: "🧠 Wellness", Heading: "🧠 Mental Wellness",
		Tip: &tabTip{Kind: "warning", Text: "🌙 Tip: Quality sleep is crucial for overall health. Aim for 7-9 hours nightly!"}},
}

// formPage is the data for form.html.
type formPage struct {
	ConfigError string
	Schema      lifestyle.FormSchema
	Profile     lifestyle.UserProfile
	Error       string
	ErrorDetail string
	FieldErrors map[string]string
}

// resultsPage is the data for results.html.
type resultsPage struct {
	ConfigError string
	Result      *assessment.Result
	Level       lifestyle.Level
	Report      template.HTML
	Tabs        []resultTab
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts the advisor's text to HTML. Raw HTML in the text is
// dropped by goldmark's default renderer; on conversion failure the text is
// shown escaped.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		log.Warn().Err(err).Msg("Failed to render recommendation markdown")
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}
