package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ozzus/brackets/internal/domain/models"
)

// pathID reads a positive integer route variable.
func pathID(r *http.Request, key string) (int64, bool) {
	raw := strings.TrimSpace(mux.Vars(r)[key])
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func genderQuery(r *http.Request) (gender *models.Gender, errMsg string) {
	raw := strings.TrimSpace(r.URL.Query().Get("gender"))
	if raw == "" {
		return nil, ""
	}

	g, ok := models.ParseGender(raw)
	if !ok {
		return nil, "gender must be male or female"
	}
	return &g, ""
}

func filterQuery(r *http.Request) (models.GameFilter, string) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter")))
	filter, ok := models.ParseGameFilter(raw)
	if !ok {
		return "", "filter must be all, upcoming or completed"
	}
	return filter, ""
}
