package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AslanEminovi/codex-blogsite/internal/adminservice"
	"github.com/AslanEminovi/codex-blogsite/internal/blogservice"
	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("method", r.Method),
		slog.String("url", r.URL.RequestURI()),
		slog.String("request_id", contextGetRequestID(r)),
	)
}

// writeErrorResponse writes {"error": message}; message is a string or a field map.
func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, errors)
}

func (app *application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, "Invalid email or password.")
}

func (app *application) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "you must be authenticated to access this resource")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusForbidden, "you do not have permission to access this resource")
}

// serviceErrorResponse maps the errors shared by every service to a response.
func (app *application) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var vErr common.ValidationError

	switch {
	case errors.As(err, &vErr):
		app.failedValidationResponse(w, r, vErr.Errors)
	case errors.Is(err, userservice.ErrDuplicateEmail):
		app.failedValidationResponse(w, r, map[string]string{"email": "a user with this email address already exists"})
	case errors.Is(err, userservice.ErrDuplicateUsername):
		app.failedValidationResponse(w, r, map[string]string{"username": "a user with this username already exists"})
	case errors.Is(err, userservice.ErrInvalidCredentials):
		app.invalidCredentialsResponse(w, r)
	case errors.Is(err, common.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, blogservice.ErrFavoriteNotFound):
		app.writeErrorResponse(w, r, http.StatusNotFound, "Blog not found in favorites")
	case errors.Is(err, common.ErrUnauthenticated):
		app.authenticationRequiredResponse(w, r)
	case errors.Is(err, common.ErrForbidden):
		app.forbiddenResponse(w, r)
	case errors.Is(err, blogservice.ErrAlreadyFavorited):
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Blog is already in favorites")
	case errors.Is(err, adminservice.ErrSelfDeletion):
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Cannot delete your own admin account.")
	case errors.Is(err, adminservice.ErrCannotDeleteAdmin):
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Cannot delete another admin user.")
	default:
		app.serverErrorResponse(w, r, err)
	}
}
