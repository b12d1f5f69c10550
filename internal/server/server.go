// Package server exposes the deck generator as a small HTML form over HTTP.
package server

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/haowjy/meridian-deckgen"
	"github.com/haowjy/meridian-deckgen/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures the router.
type Options struct {
	Logger logrus.FieldLogger

	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// CORSOrigins enables CORS for the listed origins. Empty disables CORS.
	CORSOrigins []string
}

// generateForm is the submitted form. Zero numeric fields fall back to the
// catalog defaults.
type generateForm struct {
	Topic       string `form:"topic"`
	SlideCount  int    `form:"slide_count"`
	BulletCount int    `form:"bullet_count"`
	Model       string `form:"model"`
	Theme       string `form:"theme"`
	Font        string `form:"font"`
	FontSize    int    `form:"font_size"`
	Bullets     bool   `form:"bullets"`
}

type formView struct {
	Catalog *deckgen.Catalog
	Form    generateForm
	Error   string
}

type handler struct {
	svc    *pipeline.Service
	logger logrus.FieldLogger
}

// NewRouter wires the form, the generate endpoint, health and metrics.
func NewRouter(svc *pipeline.Service, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h := &handler{svc: svc, logger: logger}
	r.GET("/", h.showForm)
	r.POST("/generate", h.generate)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}

func (h *handler) defaults() generateForm {
	c := h.svc.Catalog()
	return generateForm{
		SlideCount:  c.Limits.SlideCount.Default,
		BulletCount: c.Limits.BulletCount.Default,
		Model:       c.DefaultModel,
		Theme:       c.DefaultTheme,
		Font:        c.Fonts[0],
		FontSize:    c.Limits.FontSize.Default,
		Bullets:     true,
	}
}

func (h *handler) showForm(c *gin.Context) {
	h.render(c, http.StatusOK, h.defaults(), "")
}

func (h *handler) render(c *gin.Context, status int, form generateForm, message string) {
	c.HTML(status, "form.html", formView{
		Catalog: h.svc.Catalog(),
		Form:    form,
		Error:   message,
	})
}

func (h *handler) generate(c *gin.Context) {
	form, err := h.bindForm(c)
	if err != nil {
		h.render(c, http.StatusBadRequest, form, "Invalid form input: "+err.Error())
		return
	}

	catalog := h.svc.Catalog()
	req := deckgen.GenerationRequest{
		Topic:       form.Topic,
		SlideCount:  form.SlideCount,
		BulletCount: form.BulletCount,
		Model:       form.Model,
	}

	style, err := deckgen.NewStyleOptions(catalog, form.Theme, form.Font, form.FontSize, form.Bullets)
	if err != nil {
		// Request errors, the empty topic above all, take precedence.
		if reqErr := req.Validate(catalog); reqErr != nil {
			err = reqErr
		}
		h.render(c, http.StatusBadRequest, form, userMessage(err))
		return
	}

	dl, err := h.svc.Generate(c.Request.Context(), req, style)
	if err != nil {
		h.render(c, statusFor(err), form, userMessage(err))
		return
	}

	c.Header("Content-Disposition", dl.ContentDisposition())
	c.Data(http.StatusOK, dl.MIMEType, dl.Data)
}

// bindForm reads the submitted form over the catalog defaults. The form
// posts a hidden bullets=false after the checkbox, so an unchecked box
// binds false while clients that omit the field keep the default.
func (h *handler) bindForm(c *gin.Context) (generateForm, error) {
	form := h.defaults()
	if err := c.ShouldBind(&form); err != nil {
		return form, err
	}
	h.fillDefaults(&form)
	return form, nil
}

func (h *handler) fillDefaults(form *generateForm) {
	d := h.defaults()
	if form.SlideCount == 0 {
		form.SlideCount = d.SlideCount
	}
	if form.BulletCount == 0 {
		form.BulletCount = d.BulletCount
	}
	if form.FontSize == 0 {
		form.FontSize = d.FontSize
	}
	if form.Model == "" {
		form.Model = d.Model
	}
	if form.Theme == "" {
		form.Theme = d.Theme
	}
	if form.Font == "" {
		form.Font = d.Font
	}
}

func statusFor(err error) int {
	switch pipeline.StatusOf(err) {
	case pipeline.StatusInvalid:
		return http.StatusBadRequest
	case pipeline.StatusGenerationFailed:
		if deckgen.IsInvalidRequest(err) {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage turns an error into the text shown under the form.
func userMessage(err error) string {
	var validationErr *deckgen.ValidationError
	if errors.As(err, &validationErr) {
		if errors.Is(err, deckgen.ErrEmptyTopic) {
			return validationErr.Reason
		}
		return "Invalid " + validationErr.Field + ": " + validationErr.Reason
	}

	var genErr *deckgen.GenerationError
	if errors.As(err, &genErr) {
		switch {
		case deckgen.IsAuthError(err):
			return "The language model rejected the API key."
		case errors.Is(err, deckgen.ErrInvalidModel):
			return "The selected model is not available."
		case deckgen.IsRetryable(err):
			return "The language model is busy or unavailable. Please try again."
		}
		return "Generating the " + genErr.Stage + " failed: " + genErr.Err.Error()
	}

	return "Building the presentation failed."
}
