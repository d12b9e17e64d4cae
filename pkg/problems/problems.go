package problems

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrBadRequest = errors.New("bad request")
var ErrInternal = errors.New("internal error")
var ErrNotFound = errors.New("not found")
var ErrUnauthorized = errors.New("unauthorized")
var ErrBadResponse = errors.New("bad response")

const typePrefix string = "https://diwise.io/playgrounds/errors/"

const (
	//ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

//ProblemDetails stores details about a certain problem according to RFC7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	MarshalJSON() ([]byte, error)
	ResponseCode() int
	WriteResponse(w http.ResponseWriter)
}

//ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

func newProblem(name, title, detail string, code int, traceID string) ProblemDetailsImpl {
	return ProblemDetailsImpl{
		typ:     typePrefix + name,
		title:   title,
		detail:  detail,
		code:    code,
		traceID: traceID,
	}
}

//BadRequest reports that the request parameters or body could not be used
type BadRequest struct {
	ProblemDetailsImpl
}

func NewBadRequest(detail, traceID string) *BadRequest {
	return &BadRequest{newProblem("BadRequest", "Bad Request", detail, http.StatusBadRequest, traceID)}
}

//ReportBadRequest creates a BadRequest instance and sends it to the supplied http.ResponseWriter
func ReportBadRequest(w http.ResponseWriter, detail, traceID string) {
	report(w, NewBadRequest(detail, traceID))
}

//InternalError reports that there has been an error during the operation execution
type InternalError struct {
	ProblemDetailsImpl
}

func (ie InternalError) Error() string {
	return ie.detail
}

func NewInternalError(detail, traceID string) *InternalError {
	return &InternalError{newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError, traceID)}
}

func ReportInternalError(w http.ResponseWriter, detail, traceID string) {
	report(w, NewInternalError(detail, traceID))
}

type NotFound struct {
	ProblemDetailsImpl
}

func NewNotFound(detail, traceID string) *NotFound {
	return &NotFound{newProblem("ResourceNotFound", "Not Found", detail, http.StatusNotFound, traceID)}
}

func ReportNotFound(w http.ResponseWriter, detail, traceID string) {
	report(w, NewNotFound(detail, traceID))
}

type UnauthorizedRequest struct {
	ProblemDetailsImpl
}

func NewUnauthorizedRequest(detail, traceID string) *UnauthorizedRequest {
	return &UnauthorizedRequest{newProblem("UnauthorizedRequest", "Unauthorized Request", detail, http.StatusUnauthorized, traceID)}
}

func ReportUnauthorizedRequest(w http.ResponseWriter, detail, traceID string) {
	report(w, NewUnauthorizedRequest(detail, traceID))
}

func report(w http.ResponseWriter, p ProblemDetails) {
	p.WriteResponse(w)
}

type clientError struct {
	msg    string
	target error
}

func (e clientError) Error() string        { return e.msg }
func (e clientError) Is(target error) bool { return target == e.target }

// NewErrorFromProblemReport turns a problem report received from the API
// into an error that can be matched with errors.Is
func NewErrorFromProblemReport(code int, body []byte) error {
	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return fmt.Errorf("%w: failed to process problem report (%d): %s", ErrBadResponse, code, err.Error())
	}

	switch report.Type {
	case typePrefix + "BadRequest":
		return clientError{msg: report.Detail, target: ErrBadRequest}
	case typePrefix + "ResourceNotFound":
		return clientError{msg: report.Detail, target: ErrNotFound}
	case typePrefix + "UnauthorizedRequest":
		return clientError{msg: report.Detail, target: ErrUnauthorized}
	}

	return clientError{
		msg: fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received",
			code, report.Type, report.Detail),
		target: ErrInternal,
	}
}

//ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string {
	return p.typ
}

func (p *ProblemDetailsImpl) Title() string {
	return p.title
}

func (p *ProblemDetailsImpl) Detail() string {
	return p.detail
}

//MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	return json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
}

//ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

//WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
