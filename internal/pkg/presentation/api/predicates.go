package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/diwise/playgrounds/pkg/predicates"
	"github.com/diwise/playgrounds/pkg/problems"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type appliesResponse struct {
	Applies bool `json:"applies"`
}

func NewDivisibleByThreeHandler() http.HandlerFunc {
	return newPredicateHandler(predicates.BothDivisibleByThree)
}

func NewSameDigitSumHandler() http.HandlerFunc {
	return newPredicateHandler(predicates.SameDigitSum)
}

func newPredicateHandler(predicate predicates.Predicate[int]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		a, b, err := intPair(r)
		if err != nil {
			problems.ReportBadRequest(w, err.Error(), traceID(ctx))
			return
		}

		writeJSON(ctx, w, appliesResponse{Applies: predicates.Apply(a, b, predicate)})
	})
}

// NewConcatenationHandler joins the a and b query parameters if both are
// short enough. No content is returned when they are not.
func NewConcatenationHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		result, ok := predicates.ConcatenateSmallStrings(query.Get("a"), query.Get("b")).Get()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(r.Context(), w, struct {
			Value string `json:"value"`
		}{result})
	})
}

func intPair(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	a, err := strconv.Atoi(query.Get("a"))
	if err != nil {
		return 0, 0, fmt.Errorf("query parameter a must be an integer")
	}

	b, err := strconv.Atoi(query.Get("b"))
	if err != nil {
		return 0, 0, fmt.Errorf("query parameter b must be an integer")
	}

	return a, b, nil
}
