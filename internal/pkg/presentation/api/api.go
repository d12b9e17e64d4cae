package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/diwise/playgrounds/internal/pkg/presentation/api/auth"
	"github.com/diwise/playgrounds/pkg/problems"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxBodySize int64 = 1 << 20

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			Authorize(authenticator),
		)

		r.Get("/greetings", NewGreetingHandler())

		r.Route("/predicates", func(r chi.Router) {
			r.Get("/divisible-by-three", NewDivisibleByThreeHandler())
			r.Get("/same-digit-sum", NewSameDigitSumHandler())
		})

		r.Get("/strings/concatenation", NewConcatenationHandler())

		r.Route("/zoo", func(r chi.Router) {
			r.Get("/noises", NewNoisesHandler())
			r.Get("/descriptions/{animal}", NewDescriptionHandler())
			r.Post("/artists/comparison", NewArtistComparisonHandler())
		})

		r.Post("/grids/flattened", NewFlattenHandler())
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize rejects every request that the authenticator does not grant access to
func Authorize(authenticator auth.Enticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := authenticator.CheckAccess(ctx, r)
			if err != nil {
				logging.GetFromContext(ctx).Warn("access not granted", "err", err.Error())
				problems.ReportUnauthorizedRequest(w, "access not granted", traceID(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func traceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil && labeler != nil {
		labeler.Add(attribute.Bool("error", true))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response body", "err", err.Error())
		problems.ReportInternalError(w, "failed to marshal response body", traceID(ctx))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

var errTrailingData = errors.New("request body must contain a single json value")

// decodeJSON decodes exactly one json value from the request body into v.
// Unknown fields and anything but whitespace after the value are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}
