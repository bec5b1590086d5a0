package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(strings.TrimSpace(allowed)) == cleanedRequest {
			return true
		}
	}

	return false
}

func (app *Application) checkOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(next).ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestID,
		middleware.RealIP,
		middleware.Recoverer,
		app.logRequests,
		app.checkOrigins,
	)
	r.MethodNotAllowed(app.methodNotAllowed)

	// Public endpoints
	r.Get("/", app.home)
	r.Get("/v1/families", app.getFamilies)
	r.Get("/v1/colors/random", app.getRandomColor)
	r.Get("/v1/colors/random/{format}", app.getRandomColorFormat)
	r.Get("/v1/colors/daily", app.getDailyColor)
	r.Get("/v1/colors/daily/all", app.getAllDailyColors)
	r.Post("/v1/admin/token", app.issueAdminToken)

	// Admin endpoints
	r.Group(func(r chi.Router) {
		r.Use(app.requireAdmin)
		r.Post("/v1/admin/colors/generate", app.generateDailyColor)
	})

	return r
}
