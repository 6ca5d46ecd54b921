package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"thumbnailgen/internal/domain"
	"thumbnailgen/internal/thumbnail"
)

type generateRequest struct {
	Topic   string            `json:"topic"`
	Options thumbnail.Options `json:"options"`
}

type generateResponse struct {
	Topic string `json:"topic"`
	Path  string `json:"path"`
}

type batchRequest struct {
	Topics  []string          `json:"topics"`
	Options thumbnail.Options `json:"options"`
}

type batchItem struct {
	Topic   string `json:"topic"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

// GenerateThumbnail handles POST /v1/thumbnails. Unknown JSON fields are
// rejected, which is how the options "unknown fields" policy is enforced at
// the wire boundary.
func (a *App) GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		a.jsonError(w, http.StatusBadRequest, "topic is required")
		return
	}

	path, err := a.Client.Generate(r.Context(), req.Topic, req.Options)
	if err != nil {
		a.jsonError(w, statusForError(err), err.Error())
		return
	}
	a.json(w, http.StatusCreated, generateResponse{Topic: strings.TrimSpace(req.Topic), Path: path})
}

// GenerateThumbnailBatch handles POST /v1/thumbnails/batch. The response
// carries one item per requested topic, in request order, with per-item
// success flags; individual failures never fail the call.
func (a *App) GenerateThumbnailBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Topics) == 0 {
		a.jsonError(w, http.StatusBadRequest, "topics are required")
		return
	}

	results := a.Client.GenerateBatch(r.Context(), req.Topics, req.Options)
	items := make([]batchItem, 0, len(results))
	for _, res := range results {
		item := batchItem{Topic: res.Topic, Success: res.OK}
		if res.OK {
			item.Path = res.Path
		} else {
			item.Error = res.Message
		}
		items = append(items, item)
	}
	a.json(w, http.StatusOK, batchResponse{Results: items})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrConfig):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
