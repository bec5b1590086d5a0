package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrInvalidPrivelege = fmt.Errorf("invalid authentication privileges")

func writeHandlerError(w http.ResponseWriter, status int, handlerErr HandlerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(handlerErr)
}

func (app *Application) invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid credentials")
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authorizing User",
		Description:      err.Error(),
		PossibleSolution: "Retry with proper credentials",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("invalid authorization")
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid token",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeHandlerError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Method Not Allowed",
		Description:      r.Method + " is not supported for " + r.URL.Path,
		PossibleSolution: "Check the HTTP method for this endpoint",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("internal server error")
	writeHandlerError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidAlpha(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Invalid Alpha",
		Description:      err.Error(),
		PossibleSolution: "Use an alpha between 0 and 1, or alpha=random",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      err.Error(),
		PossibleSolution: "Try again later or ask an admin to generate it",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}
