package handlers

import (
	"context"

	"github.com/oaiiae/contacts-bot/router"
)

type Greeting struct{}

func (h *Greeting) Register(r *router.Router) {
	r.Handle("hello", h.handle)
}

func (h *Greeting) handle(_ context.Context, _ []string) (string, error) {
	return "How can I help you?", nil
}
