// Package pagehandler serves the HTML validation page: it reads the person
// fields from the query string, validates them and renders the outcome
// together with the submitted values and a few example links.
package pagehandler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"personcheck/internal/api/handler"
	"personcheck/internal/validation"
	"personcheck/pkg/domain"
	"personcheck/pkg/logger"
	"personcheck/pkg/metrics"
	"personcheck/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Endpoint labels this handler in metrics.
const Endpoint = "page"

type Deps struct {
	Validator validation.Validator
	// Validations is optional; outcomes are not counted when nil.
	Validations *metrics.Validations
}

type Handler struct {
	deps      Deps
	templates *template.Template
	tracer    trace.Tracer
}

// Ensure Handler implements http.Handler.
var _ http.Handler = (*Handler)(nil)

// New parses the embedded templates and returns the page handler.
func New(deps Deps) (*Handler, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse page templates: %w", err)
	}

	return &Handler{
		deps:      deps,
		templates: templates,
		tracer:    otel.Tracer("personcheck/pagehandler"),
	}, nil
}

type pageData struct {
	Valid    bool
	Message  string
	Reason   string
	Person   domain.Person
	Input    domain.PersonInput
	Examples []Example
}

type errorData struct {
	Status int
	Text   string
}

// ServeHTTP answers GET and HEAD on any path with 200 for accepted input and
// 400 for rejected input. Failures outside the validation rules produce a
// generic 500 page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "pagehandler.ServeHTTP", trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		err := serrors.With(serrors.ErrMethodNotAllowed, "method %s not allowed", r.Method)
		http.Error(w, serrors.PublicMessage(err), serrors.HTTPStatus(err))

		return
	}

	in := handler.PersonInput(r.URL.Query())
	person, err := h.deps.Validator.Validate(in)
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "could not validate input", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed unexpectedly")
		h.renderError(w, r, status)

		return
	}

	reason := handler.ReasonName(err)
	span.SetAttributes(attribute.String("validation.reason", reason))
	if h.deps.Validations != nil {
		h.deps.Validations.Record(ctx, Endpoint, reason)
	}

	data := pageData{
		Valid:    err == nil,
		Reason:   reason,
		Person:   person,
		Input:    in,
		Examples: Examples(),
	}
	if err != nil {
		data.Message = serrors.PublicMessage(err)
		logger.Debug(ctx, "input rejected", zap.String("reason", reason))
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "page.html", data); err != nil {
		logger.Error(ctx, "could not render page", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		h.renderError(w, r, http.StatusInternalServerError)

		return
	}

	writeHTML(w, status, &buf)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "error.html", errorData{
		Status: status,
		Text:   http.StatusText(status),
	}); err != nil {
		logger.Error(r.Context(), "could not render error page", zap.Error(err))
		http.Error(w, http.StatusText(status), status)

		return
	}

	writeHTML(w, status, &buf)
}

func writeHTML(w http.ResponseWriter, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = body.WriteTo(w)
}
