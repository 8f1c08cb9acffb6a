// Package controllers holds the HTTP handlers that drive form sessions.
package controllers

import (
	"net/http"

	gohttp "github.com/km-arc/go-forms/framework/http"
)

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}
func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
