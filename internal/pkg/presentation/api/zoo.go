package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/diwise/playgrounds/pkg/problems"
	"github.com/diwise/playgrounds/pkg/zoo"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var animals = map[string]any{
	"dog":     zoo.Dog{},
	"ostrich": zoo.Ostrich{},
}

func NewNoisesHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		noises := []string{}
		for _, m := range zoo.Barnyard() {
			noises = append(noises, m.Noise())
		}

		writeJSON(r.Context(), w, noises)
	})
}

// NewDescriptionHandler describes the hair color of an animal, provided that
// the animal is a hairy biped
func NewDescriptionHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		name := strings.ToLower(chi.URLParam(r, "animal"))

		animal, ok := animals[name]
		if !ok {
			err = fmt.Errorf("no animal named %s", name)
			problems.ReportNotFound(w, err.Error(), traceID(ctx))
			return
		}

		hb, ok := animal.(zoo.HairyBiped)
		if !ok {
			err = fmt.Errorf("%s is not a hairy biped", name)
			problems.ReportBadRequest(w, err.Error(), traceID(ctx))
			return
		}

		writeJSON(ctx, w, struct {
			Description string `json:"description"`
		}{zoo.Describe(hb)})
	})
}

func NewArtistComparisonHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		comparison := struct {
			A *zoo.Artist `json:"a"`
			B *zoo.Artist `json:"b"`
		}{}

		err = decodeJSON(r, &comparison)
		if err != nil {
			problems.ReportBadRequest(w, "unable to decode artists: "+err.Error(), traceID(ctx))
			return
		}

		if comparison.A == nil || comparison.B == nil {
			err = fmt.Errorf("two artists are needed for a comparison")
			problems.ReportBadRequest(w, err.Error(), traceID(ctx))
			return
		}

		writeJSON(ctx, w, struct {
			Equal bool `json:"equal"`
		}{zoo.Equals(*comparison.A, *comparison.B)})
	})
}

func NewFlattenHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		grid := [][]int{}

		err = decodeJSON(r, &grid)
		if err != nil {
			problems.ReportBadRequest(w, "unable to decode grid: "+err.Error(), traceID(ctx))
			return
		}

		writeJSON(ctx, w, zoo.FlattenSlice(grid))
	})
}
