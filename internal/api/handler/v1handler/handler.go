// Package v1handler serves the JSON flavour of the validation endpoint.
package v1handler

import (
	"net/http"
	"personcheck/internal/api/handler"
	"personcheck/internal/validation"
	"personcheck/pkg/domain"
	"personcheck/pkg/logger"
	"personcheck/pkg/metrics"
	"personcheck/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Endpoint labels this handler in metrics.
const Endpoint = "v1"

type Deps struct {
	Validator validation.Validator
	// Validations is optional; outcomes are not counted when nil.
	Validations *metrics.Validations
}

type Handler struct {
	deps   Deps
	tracer trace.Tracer
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:   deps,
		tracer: otel.Tracer("personcheck/v1handler"),
	}
}

// Validate handles GET /v1/validate. Status codes match the HTML page: 200
// for accepted input, 400 with the reason code for rejected input.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "v1handler.Validate", trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	person, err := h.deps.Validator.Validate(handler.PersonInput(r.URL.Query()))
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "could not validate input", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed unexpectedly")
	} else {
		reason := handler.ReasonName(err)
		span.SetAttributes(attribute.String("validation.reason", reason))
		if h.deps.Validations != nil {
			h.deps.Validations.Record(ctx, Endpoint, reason)
		}
	}

	var e jx.Encoder
	EncodeResult(&e, person, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(errors.Wrap(err, "write validation result")))
	}
}

// EncodeResult writes the validation outcome as a JSON object:
//
//	{"valid":true,"person":{"fullName":"..","age":19,"height":".."}}
//	{"valid":false,"reason":"INVALID_AGE_RANGE","message":".."}
//
// Errors that are not validation failures are reported with the name of
// their kind (or INTERNAL) and a generic message.
func EncodeResult(e *jx.Encoder, person domain.Person, err error) {
	e.ObjStart()
	e.FieldStart("valid")
	e.Bool(err == nil)

	if err == nil {
		e.FieldStart("person")
		e.ObjStart()
		e.FieldStart("fullName")
		e.Str(person.FullName)
		e.FieldStart("age")
		e.Int(person.Age)
		e.FieldStart("height")
		e.Str(person.Height)
		e.ObjEnd()
	} else {
		e.FieldStart("reason")
		e.Str(reasonCode(err))
		e.FieldStart("message")
		e.Str(serrors.PublicMessage(err))
	}

	e.ObjEnd()
}

func reasonCode(err error) string {
	if reason := handler.ReasonName(err); reason != "" {
		return reason
	}
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}
