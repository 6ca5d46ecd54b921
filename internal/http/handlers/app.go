package handlers

import (
	"encoding/json"
	"net/http"

	"thumbnailgen/internal/thumbnail"
)

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Client *thumbnail.Client
}

func NewApp(client *thumbnail.Client) *App {
	return &App{Client: client}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) jsonError(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}
