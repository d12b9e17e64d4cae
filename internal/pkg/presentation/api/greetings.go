package api

import (
	"net/http"

	"github.com/diwise/playgrounds/pkg/greeting"
	"github.com/diwise/playgrounds/pkg/optional"
	"github.com/diwise/playgrounds/pkg/problems"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewGreetingHandler introduces the person named by the name query parameter.
// Leaving the parameter out means that there is no person.
func NewGreetingHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		query := r.URL.Query()

		greet, err := greeting.Greeter(greeting.Variant(query.Get("variant")))
		if err != nil {
			problems.ReportBadRequest(w, err.Error(), traceID(ctx))
			return
		}

		person := optional.None[greeting.Person]()
		if query.Has("name") {
			person = optional.Some(greeting.NewPerson(query.Get("name")))
		}

		writeJSON(ctx, w, struct {
			Greeting string `json:"greeting"`
		}{greet(person)})
	})
}
