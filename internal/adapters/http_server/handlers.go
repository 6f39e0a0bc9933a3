package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tastemap/internal/adapters/observability"
	"tastemap/internal/app"
	"tastemap/internal/domain"
)

// ImageStore persists an uploaded image and returns its public access path.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

type Handlers struct {
	Q      *app.SearchService
	Images ImageStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/restaurants", h.listRestaurants)
	s.mux.Get("/api/restaurants/{id}", h.getRestaurant)
	s.mux.Get("/api/search/text", h.searchText)
	s.mux.Get("/api/search/nearby", h.searchNearby)
	s.mux.Post("/api/search/image", h.searchImage)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeSearchError maps service errors onto the taxonomy: validation -> 400,
// not found -> 404, anything else -> 500 carrying the store's message.
func writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	observability.ObserveSearch("listing")
	q := r.URL.Query()
	out, err := h.Q.List(r.Context(), ParseListFilter(q), ParsePageQuery(q))
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "restaurant not found")
		return
	}
	resp, err := h.Q.Get(r.Context(), id)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	etag, body := calcETagAndBody(resp)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getRestaurant body")
	}
}

func (h *Handlers) searchText(w http.ResponseWriter, r *http.Request) {
	observability.ObserveSearch("text")
	q := r.URL.Query()
	out, err := h.Q.SearchText(r.Context(), q.Get("q"), ParsePageQuery(q))
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) searchNearby(w http.ResponseWriter, r *http.Request) {
	observability.ObserveSearch("nearby")
	q := r.URL.Query()
	out, err := h.Q.SearchNearby(r.Context(), ParseNearbyQuery(q), ParsePageQuery(q))
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type imageSearchResponse struct {
	app.SearchPage
	UploadedImage string `json:"uploadedImage"`
	DetectedFood  string `json:"detectedFood"`
}

// searchImage stores the uploaded picture and matches its foodType hint
// against cuisine tags. No real image recognition happens; the hint (or
// "general") is what gets matched.
func (h *Handlers) searchImage(w http.ResponseWriter, r *http.Request) {
	observability.ObserveSearch("image")
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("foodImage")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "no image uploaded")
		return
	}
	defer file.Close()

	path, err := h.Images.Save(header.Filename, file)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	foodType := r.FormValue("foodType")
	if foodType == "" {
		foodType = "general"
	}
	out, err := h.Q.SearchCuisine(r.Context(), foodType, ParsePageQuery(r.URL.Query()))
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageSearchResponse{
		SearchPage:    out,
		UploadedImage: path,
		DetectedFood:  foodType,
	})
}
