package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/km-arc/go-forms/framework/http/validation"
)

const maxBody = 1 << 20 // 1 MB

// ErrEmptyBody is returned by Bind when a JSON request has no body.
var ErrEmptyBody = errors.New("empty request body")

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes a JSON request body into v.
func (req *Request) Bind(v any) error {
	body, err := req.body()
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// BindState decodes a JSON object of field values into a State. Numbers are
// kept as their literal digits; see validation.StateFrom for the rest.
func (req *Request) BindState() (validation.State, error) {
	body, err := req.body()
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return validation.StateFrom(raw)
}

func (req *Request) body() ([]byte, error) {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(io.LimitReader(req.raw.Body, maxBody))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

// State collects the named fields from the posted form. A field that was not
// posted, such as an unchecked checkbox, reads as "".
func (req *Request) State(fields []string) (validation.State, error) {
	if err := req.raw.ParseForm(); err != nil {
		return nil, err
	}
	st := make(validation.State, len(fields))
	for _, f := range fields {
		st[f] = req.raw.PostForm.Get(f)
	}
	return st, nil
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
