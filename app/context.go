package main

import (
	"context"
	"net/http"

	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

type contextKey string

const (
	principalContextKey = contextKey("principal")
	requestIDContextKey = contextKey("request_id")
)

func (app *application) contextSetPrincipal(r *http.Request, p *userservice.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), principalContextKey, p)
	return r.WithContext(ctx)
}

// contextGetPrincipal returns the anonymous principal when the request never passed through authenticate.
func (app *application) contextGetPrincipal(r *http.Request) *userservice.Principal {
	p, ok := r.Context().Value(principalContextKey).(*userservice.Principal)
	if !ok || p == nil {
		return userservice.AnonymousPrincipal
	}
	return p
}

func contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

func contextWithRequestID(r *http.Request, id string) context.Context {
	return context.WithValue(r.Context(), requestIDContextKey, id)
}
