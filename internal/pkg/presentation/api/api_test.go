package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestGreetPresentPerson(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/greetings?name=Kaichi", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"greeting":"My name is Kaichi."}`)
}

func TestGreetAbsentPersonWithBothVariants(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	for _, variant := range []string{"binding", "match"} {
		resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/greetings?variant="+variant, nil)

		is.Equal(resp.StatusCode, http.StatusOK)
		is.Equal(body, `{"greeting":"This is not a valid person object."}`)
	}
}

func TestGreetWithUnknownVariantIsBadRequest(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/api/v0/greetings?variant=regex", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestDivisibleByThree(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	_, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/predicates/divisible-by-three?a=47685&b=344832", nil)
	is.Equal(body, `{"applies":true}`)

	_, body = newTestRequest(is, ts, http.MethodGet, "/api/v0/predicates/divisible-by-three?a=85436&b=53893", nil)
	is.Equal(body, `{"applies":false}`)
}

func TestSameDigitSum(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	_, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/predicates/same-digit-sum?a=123&b=321", nil)
	is.Equal(body, `{"applies":true}`)
}

func TestPredicateWithNonIntegerIsBadRequest(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/predicates/divisible-by-three?a=three&b=3", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.True(strings.Contains(body, "query parameter a must be an integer"))
}

func TestConcatenation(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/strings/concatenation?a=abc&b=def", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"value":"abcdef"}`)

	resp, body = newTestRequest(is, ts, http.MethodGet, "/api/v0/strings/concatenation?a=abcdef&b=ghijkl", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(body, "")
}

func TestNoisesAreReturnedInOrder(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	_, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/zoo/noises", nil)
	is.Equal(body, `["Paon","Bu-Hi, Bu-Hi","Moo"]`)
}

func TestDescribeAnimals(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/zoo/descriptions/ostrich", nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"description":"Ostrich's hair color is Black"}`)

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/api/v0/zoo/descriptions/dog", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest) // a dog is not a biped

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/api/v0/zoo/descriptions/unicorn", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestCompareArtists(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "Andy Warhol", "style": "popArt", "yearBorn": 1928},
		"b": {"name": "Kaichi Momose", "style": "popArt", "yearBorn": 1994}
	}`))
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"equal":true}`)

	_, body = newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism", "yearBorn": 1840},
		"b": {"name": "monet", "style": "cubism", "yearBorn": 1840}
	}`))
	is.Equal(body, `{"equal":false}`)
}

func TestCompareArtistsNeedsTwoKnownArtists(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism", "yearBorn": 1840}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism", "yearBorn": 1840},
		"b": {"name": "Banksy", "style": "graffiti", "yearBorn": 1974}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestCompareArtistsWithoutStyleIsBadRequest(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "Banksy"},
		"b": {"name": "Anonymous"}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest) // two artists without style must not compare as equal
	is.True(strings.Contains(body, "artist has no style"))

	resp, _ = newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism", "yearBorn": 1840},
		"b": {"name": "Banksy", "style": ""}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestCompareArtistsRejectsUnknownFieldsAndTrailingData(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism"},
		"b": {"name": "monet", "style": "impressionism"},
		"c": {"name": "monet", "style": "cubism"}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism", "signature": "C.M."},
		"b": {"name": "monet", "style": "impressionism"}
	}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newTestRequest(is, ts, http.MethodPost, "/api/v0/zoo/artists/comparison", bytes.NewBufferString(`{
		"a": {"name": "monet", "style": "impressionism"},
		"b": {"name": "monet", "style": "impressionism"}
	} {"a": null}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestFlattenGridWithTrailingDataIsBadRequest(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/grids/flattened", bytes.NewBufferString(`[[1,2]] [[3]]`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/grids/flattened", bytes.NewBufferString("[[1,2],[3]]\n"))
	is.Equal(resp.StatusCode, http.StatusOK) // trailing whitespace is fine
	is.Equal(body, `[1,2,3]`)
}

func TestFlattenGrid(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/api/v0/grids/flattened", bytes.NewBufferString(`[[2,5,9],[0,4,2],[6,8,3]]`))

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `[2,5,9,0,4,2,6,8,3]`)
}

func TestFlattenBadGridIsBadRequest(t *testing.T) {
	is, ts := setupTest(t, allowAll)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/api/v0/grids/flattened", bytes.NewBufferString(`[1,2,3]`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestDeniedAccessIsUnauthorized(t *testing.T) {
	is, ts := setupTest(t, denyAll)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/api/v0/zoo/noises", nil)

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
	is.True(strings.Contains(body, "UnauthorizedRequest"))
}

func TestInvalidPoliciesFailRegistration(t *testing.T) {
	is := is.New(t)

	err := RegisterHandlers(context.Background(), chi.NewRouter(), bytes.NewBufferString("package"))
	is.True(err != nil)
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T, policies string) (*is.I, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()

	err := RegisterHandlers(context.Background(), r, bytes.NewBufferString(policies))
	is.NoErr(err)

	return is, httptest.NewServer(r)
}

const allowAll string = `
package playgrounds.authz

default allow := true
`

const denyAll string = `
package playgrounds.authz

default allow := false
`
