package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "tastemap/internal/adapters/http_server"
	"tastemap/internal/app"
	"tastemap/internal/domain"
)

type stubRepo struct {
	byID   map[int64]domain.Restaurant
	result domain.PageResult
	err    error

	lastFilter   domain.ListFilter
	lastQuery    string
	lastFoodType string
}

func (s *stubRepo) Clear(ctx context.Context) error { return nil }
func (s *stubRepo) Insert(ctx context.Context, r domain.Restaurant) (int64, error) {
	return 0, nil
}
func (s *stubRepo) Get(ctx context.Context, id int64) (domain.Restaurant, error) {
	r, ok := s.byID[id]
	if !ok {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	return r, nil
}
func (s *stubRepo) List(ctx context.Context, f domain.ListFilter, pq domain.PageQuery) (domain.PageResult, error) {
	s.lastFilter = f
	return s.result, s.err
}
func (s *stubRepo) SearchText(ctx context.Context, q string, pq domain.PageQuery) (domain.PageResult, error) {
	s.lastQuery = q
	return s.result, s.err
}
func (s *stubRepo) SearchNearby(ctx context.Context, lat, lng, radiusMeters float64, pq domain.PageQuery) (domain.PageResult, error) {
	return s.result, s.err
}
func (s *stubRepo) SearchCuisine(ctx context.Context, foodType string, pq domain.PageQuery) (domain.PageResult, error) {
	s.lastFoodType = foodType
	return s.result, s.err
}

type stubImages struct {
	saved string
	err   error
}

func (s *stubImages) Save(originalName string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = originalName
	return "/uploads/deadbeef.jpg", nil
}

func testServer(repo *stubRepo, images httpserver.ImageStore) http.Handler {
	srv := httpserver.New([]string{"*"})
	srv.MountHandlers(&httpserver.Handlers{Q: app.NewSearchService(repo), Images: images})
	return srv.Mux()
}

func sample(id int64, name string) domain.Restaurant {
	return domain.Restaurant{ID: id, Name: name, Cuisines: []string{"Indian"}}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodePage(t *testing.T, body *bytes.Buffer) app.SearchPage {
	t.Helper()
	var out app.SearchPage
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestListRestaurants_Envelope(t *testing.T) {
	repo := &stubRepo{result: domain.PageResult{
		Items: []domain.Restaurant{sample(1, "a"), sample(2, "b")},
		Total: 12,
	}}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/restaurants?limit=2&page=1&country=India")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	out := decodePage(t, rec.Body)
	if len(out.Data) != 2 || out.Pagination.Total != 12 || out.Pagination.Pages != 6 {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	if repo.lastFilter.Country != "India" {
		t.Fatalf("country filter not forwarded, got %+v", repo.lastFilter)
	}
}

func TestListRestaurants_EmptyDataIsArray(t *testing.T) {
	repo := &stubRepo{result: domain.PageResult{Items: nil, Total: 0}}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/restaurants")
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"data":[]`)) {
		t.Fatalf("data should marshal as [], body: %s", rec.Body.String())
	}
}

func TestGetRestaurant(t *testing.T) {
	repo := &stubRepo{byID: map[int64]domain.Restaurant{7: sample(7, "Sushi Master")}}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/restaurants/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out domain.Restaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != 7 || out.Name != "Sushi Master" {
		t.Fatalf("unexpected restaurant: %+v", out)
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatal("expected ETag header")
	}
}

func TestGetRestaurant_NotModified(t *testing.T) {
	repo := &stubRepo{byID: map[int64]domain.Restaurant{7: sample(7, "Sushi Master")}}
	h := testServer(repo, &stubImages{})

	etag := get(t, h, "/api/restaurants/7").Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
}

func TestGetRestaurant_NotFound(t *testing.T) {
	repo := &stubRepo{byID: map[int64]domain.Restaurant{}}
	h := testServer(repo, &stubImages{})

	for _, target := range []string{"/api/restaurants/99", "/api/restaurants/not-a-number"} {
		rec := get(t, h, target)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want 404", target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%s: content type = %q", target, ct)
		}
	}
}

func TestSearchText_MissingQuery(t *testing.T) {
	repo := &stubRepo{}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/search/text")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("search query is required")) {
		t.Fatalf("unexpected problem detail: %s", rec.Body.String())
	}
}

func TestSearchText_ForwardsQuery(t *testing.T) {
	repo := &stubRepo{result: domain.PageResult{Items: []domain.Restaurant{sample(3, "Sushi Master")}, Total: 1}}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/search/text?q=sushi")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.lastQuery != "sushi" {
		t.Fatalf("query = %q, want sushi", repo.lastQuery)
	}
}

func TestSearchNearby_MissingCoordinates(t *testing.T) {
	h := testServer(&stubRepo{}, &stubImages{})

	for _, target := range []string{"/api/search/nearby", "/api/search/nearby?lat=19.07"} {
		rec := get(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	h := testServer(repo, &stubImages{})

	rec := get(t, h, "/api/restaurants")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("connection refused")) {
		t.Fatalf("problem detail should carry the store error, body: %s", rec.Body.String())
	}
}

func multipartImage(t *testing.T, foodType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("foodImage", "dinner.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("not really a jpeg")); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if foodType != "" {
		if err := mw.WriteField("foodType", foodType); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestSearchImage(t *testing.T) {
	repo := &stubRepo{result: domain.PageResult{Items: []domain.Restaurant{sample(3, "Sushi Master")}, Total: 1}}
	images := &stubImages{}
	h := testServer(repo, images)

	body, ct := multipartImage(t, "sushi")
	req := httptest.NewRequest(http.MethodPost, "/api/search/image", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		app.SearchPage
		UploadedImage string `json:"uploadedImage"`
		DetectedFood  string `json:"detectedFood"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.UploadedImage != "/uploads/deadbeef.jpg" || out.DetectedFood != "sushi" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if images.saved != "dinner.jpg" {
		t.Fatalf("store got %q, want dinner.jpg", images.saved)
	}
	if repo.lastFoodType != "sushi" {
		t.Fatalf("foodType = %q, want sushi", repo.lastFoodType)
	}
}

func TestSearchImage_DefaultFoodType(t *testing.T) {
	repo := &stubRepo{result: domain.PageResult{}}
	h := testServer(repo, &stubImages{})

	body, ct := multipartImage(t, "")
	req := httptest.NewRequest(http.MethodPost, "/api/search/image", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if repo.lastFoodType != "general" {
		t.Fatalf("foodType = %q, want general", repo.lastFoodType)
	}
}

func TestSearchImage_MissingFile(t *testing.T) {
	h := testServer(&stubRepo{}, &stubImages{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("foodType", "sushi")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/search/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("no image uploaded")) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h := testServer(&stubRepo{}, &stubImages{})
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}
