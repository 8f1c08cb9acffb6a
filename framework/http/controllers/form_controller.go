package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/km-arc/go-forms/framework/forms"
	gohttp "github.com/km-arc/go-forms/framework/http"
	"github.com/km-arc/go-forms/framework/http/validation"
)

// FormController serves the registered forms as HTML pages and as a JSON API.
// Every request gets its own Session, so no form state is kept server side.
type FormController struct {
	Controller

	Forms   *forms.Registry
	Views   *gohttp.ViewEngine
	Log     *slog.Logger
	AppName string
}

// fieldRequest is the body of the single field endpoint.
type fieldRequest struct {
	Value string `json:"value"`
	Event string `json:"event"` // change (default) | blur
}

// ── HTML ─────────────────────────────────────────────────────────────────────

// Index lists every form. JSON is served for an application/json Accept
// header or ?format=json.
func (c *FormController) Index(w http.ResponseWriter, r *http.Request) {
	defs := c.Forms.Definitions()
	if req := c.Request(r); req.IsJSON() || req.Query("format") == "json" {
		out := make([]map[string]string, len(defs))
		for i, d := range defs {
			out[i] = map[string]string{"name": d.Name, "title": d.Title}
		}
		c.Response(w).Success(out)
		return
	}
	c.Views.ViewWithLayout(w, http.StatusOK, "layout", "index", map[string]any{
		"AppName": c.AppName,
		"Title":   "Forms",
		"Forms":   defs,
	})
}

// Show renders an empty form.
func (c *FormController) Show(w http.ResponseWriter, r *http.Request) {
	s, ok := c.open(w, r)
	if !ok {
		return
	}
	c.render(w, http.StatusOK, s)
}

// Store handles a classic urlencoded post: the page comes back with inline
// messages (422) or with the notice and a reset form (200).
func (c *FormController) Store(w http.ResponseWriter, r *http.Request) {
	s, ok := c.open(w, r)
	if !ok {
		return
	}
	state, err := c.Request(r).State(s.Definition().FieldNames())
	if err != nil {
		c.Response(w).Error(http.StatusBadRequest, "invalid form body")
		return
	}
	s.Load(state)

	status := http.StatusOK
	if out := s.Submit(); !out.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	c.render(w, status, s)
}

// ── JSON API ─────────────────────────────────────────────────────────────────

// Field validates one field for a change or blur event.
func (c *FormController) Field(w http.ResponseWriter, r *http.Request) {
	s, ok := c.open(w, r)
	if !ok {
		return
	}
	req, res := c.Request(r), c.Response(w)

	def := s.Definition()
	field := req.RouteParam("field")
	if _, known := def.Input(field); !known {
		res.NotFound()
		return
	}

	var body fieldRequest
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, "invalid JSON body")
		return
	}

	var event forms.Trigger
	switch body.Event {
	case "", "change":
		event = forms.OnChange
	case "blur":
		event = forms.OnBlur
	default:
		res.Error(http.StatusBadRequest, "event must be change or blur")
		return
	}

	msg, validated := def.Live(field, event, body.Value, c.Forms.Policy())
	res.Success(map[string]any{
		"field":     field,
		"error":     msg,
		"validated": validated,
	})
}

// Validate runs batch validation without submitting.
func (c *FormController) Validate(w http.ResponseWriter, r *http.Request) {
	s, state, ok := c.bindState(w, r)
	if !ok {
		return
	}
	valid, errs := s.Definition().Rules.ValidateAll(state)
	c.Response(w).Success(map[string]any{
		"valid":  valid,
		"errors": errs,
	})
}

// Submit validates and, when accepted, answers with the notice and the reset
// values. Rejections answer 422 with the error bag.
func (c *FormController) Submit(w http.ResponseWriter, r *http.Request) {
	s, state, ok := c.bindState(w, r)
	if !ok {
		return
	}
	s.Load(state)

	out := s.Submit()
	if !out.Accepted() {
		c.Response(w).ValidationError(out.Errors)
		return
	}
	c.Response(w).Success(map[string]any{
		"message": s.Notice(),
		"values":  s.State(),
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (c *FormController) open(w http.ResponseWriter, r *http.Request) (*forms.Session, bool) {
	name := c.Request(r).RouteParam("form")
	s, err := c.Forms.Open(name)
	if errors.Is(err, forms.ErrUnknownForm) {
		c.Response(w).NotFound()
		return nil, false
	}
	if err != nil {
		c.Log.Error("open form", "form", name, "err", err)
		c.Response(w).ServerError()
		return nil, false
	}
	return s, true
}

func (c *FormController) bindState(w http.ResponseWriter, r *http.Request) (*forms.Session, validation.State, bool) {
	s, ok := c.open(w, r)
	if !ok {
		return nil, nil, false
	}
	state, err := c.Request(r).BindState()
	if err != nil {
		c.Response(w).Error(http.StatusBadRequest, "invalid JSON body")
		return nil, nil, false
	}
	return s, state, true
}

func (c *FormController) render(w http.ResponseWriter, status int, s *forms.Session) {
	c.Views.ViewWithLayout(w, status, "layout", "form", newFormView(c.AppName, s))
}
