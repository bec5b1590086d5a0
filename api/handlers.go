package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/color-game/randomcolor/datastore"
	"github.com/color-game/randomcolor/dictionary"
	"github.com/color-game/randomcolor/models"
	"github.com/color-game/randomcolor/randomcolor"
)

const maxColorsPerRequest = 50

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Random Color API")
}

// optionsFromQuery reads hue, luminosity, seed, alpha and count
func optionsFromQuery(q url.Values) (randomcolor.Options, int, error) {
	builder := randomcolor.NewBuilder()

	hue, err := dictionary.ParseFamily(q.Get("hue"))
	if err != nil {
		return randomcolor.Options{}, 0, err
	}
	builder.Hue(hue)

	luminosity, err := randomcolor.ParseLuminosity(q.Get("luminosity"))
	if err != nil {
		return randomcolor.Options{}, 0, err
	}
	builder.Luminosity(luminosity)

	if seed := q.Get("seed"); seed != "" {
		if numeric, err := strconv.ParseUint(seed, 10, 64); err == nil {
			builder.Seed(numeric)
		} else {
			builder.SeedString(seed)
		}
	}

	switch alpha := strings.TrimSpace(q.Get("alpha")); alpha {
	case "":
	case "random":
		builder.RandomAlpha()
	default:
		value, err := strconv.ParseFloat(alpha, 64)
		if err != nil {
			return randomcolor.Options{}, 0, fmt.Errorf("%w: %q is not a number", randomcolor.ErrInvalidAlpha, alpha)
		}
		builder.Alpha(value)
	}

	count := 1
	if raw := q.Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 || count > maxColorsPerRequest {
			return randomcolor.Options{}, 0, fmt.Errorf("count must be between 1 and %d", maxColorsPerRequest)
		}
	}

	opts, err := builder.Build()
	return opts, count, err
}

func (app *Application) rejectOptions(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, randomcolor.ErrInvalidAlpha) {
		app.invalidAlpha(w, r, err)
		return
	}
	app.badRequest(w, r, err)
}

// GET /v1/colors/random - Generate one or more random colors
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	opts, count, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		app.rejectOptions(w, r, err)
		return
	}

	generator := randomcolor.New(opts)
	if count == 1 && r.URL.Query().Get("count") == "" {
		writeJSON(w, http.StatusOK, models.NewColor(generator.Next()))
		return
	}

	colors := make([]models.Color, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, models.NewColor(generator.Next()))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"colors": colors,
	})
}

// GET /v1/colors/random/{format} - Generate one color as plain text
func (app *Application) getRandomColorFormat(w http.ResponseWriter, r *http.Request) {
	opts, _, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		app.rejectOptions(w, r, err)
		return
	}

	color := randomcolor.Generate(opts)

	var body string
	switch format := chi.URLParam(r, "format"); format {
	case "hex":
		body = color.Hex()
	case "rgb":
		body = color.RGBString()
	case "rgba":
		body = color.RGBAString()
	case "hsl":
		body = color.HSLString()
	case "hsla":
		body = color.HSLAString()
	default:
		app.badRequest(w, r, fmt.Errorf("unknown format %q: use hex, rgb, rgba, hsl or hsla", format))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}

// GET /v1/families - List the hue families and their valid ranges
func (app *Application) getFamilies(w http.ResponseWriter, r *http.Request) {
	var families []models.FamilyInfo
	for _, entry := range dictionary.Entries() {
		sMin, sMax := entry.SaturationRange()
		bMin, bMax := entry.BrightnessRange()
		families = append(families, models.FamilyInfo{
			Name:            entry.Family.String(),
			HueRange:        entry.HueRange,
			SaturationRange: [2]int{sMin, sMax},
			BrightnessRange: [2]int{bMin, bMax},
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"families": families,
	})
}

// GET /v1/colors/daily - Get today's daily color
func (app *Application) getDailyColor(w http.ResponseWriter, r *http.Request) {
	dailyColor, err := app.DailyColorRepo.GetToday()
	if err != nil {
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			app.notFound(w, r, errors.New("no daily color available for today"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyColor.Response())
}

// GET /v1/colors/daily/all - Get all daily colors
func (app *Application) getAllDailyColors(w http.ResponseWriter, r *http.Request) {
	dailyColors, err := app.DailyColorRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.DailyColorResponse, 0, len(dailyColors))
	for _, dc := range dailyColors {
		responses = append(responses, dc.Response())
	}

	writeJSON(w, http.StatusOK, responses)
}

// POST /v1/admin/token - Exchange the admin password for a bearer token
func (app *Application) issueAdminToken(w http.ResponseWriter, r *http.Request) {
	req := &models.TokenRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if app.Config.AdminPasswordHash == "" {
		app.invalidCredentials(w, r, errors.New("admin access is not configured"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(app.Config.AdminPasswordHash), []byte(req.Password)); err != nil {
		app.invalidCredentials(w, r, errors.New("invalid password"))
		return
	}

	token, err := models.NewAdminToken(app.Config.JwtSecret, time.Second*time.Duration(app.Config.JwtAccessDuration))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// POST /v1/admin/colors/generate - Manually generate today's color (Admin only)
func (app *Application) generateDailyColor(w http.ResponseWriter, r *http.Request) {
	dailyColor, created, err := app.DailyGenerator.GenerateDailyColor(time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Daily color already exists for today",
			"color":   dailyColor.Response(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Successfully generated daily color",
		"color":   dailyColor.Response(),
	})
}
