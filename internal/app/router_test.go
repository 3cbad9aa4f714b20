package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"family-site-go/internal/config"
	"family-site-go/internal/db"
	"family-site-go/pkg/logger"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "hunter2"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		HTTPPort:       "0",
		Env:            "development",
		CORSOrigins:    []string{"http://localhost:5173"},
		MetricsEnabled: true,
		Admin: config.AdminConfig{
			Username:   testAdminUser,
			Password:   testAdminPassword,
			SessionTTL: time.Hour,
		},
		DB: config.DBConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "site.db"),
		},
	}
}

func newTestRouter(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	log := logger.Discard()

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(dbConn) })

	if err := db.Migrate(context.Background(), dbConn, cfg.DB.Driver); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRouter(cfg, dbConn, log)
}

type request struct {
	method string
	path   string
	body   string
	token  string
	cookie *http.Cookie
	origin string
}

func do(t *testing.T, router http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if req.body != "" {
		body = bytes.NewReader([]byte(req.body))
	} else {
		body = bytes.NewReader(nil)
	}
	r := httptest.NewRequest(req.method, req.path, body)
	if req.body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		r.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.cookie != nil {
		r.AddCookie(req.cookie)
	}
	if req.origin != "" {
		r.Header.Set("Origin", req.origin)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type recipeJSON struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	ImageURL    *string  `json:"imageUrl"`
	Status      string   `json:"status"`
	Category    string   `json:"category"`
	Serves      *int     `json:"serves"`
}

func login(t *testing.T, router http.Handler) (string, *http.Cookie) {
	t.Helper()
	rec := do(t, router, request{
		method: http.MethodPost,
		path:   "/api/admin/login",
		body:   `{"username":"` + testAdminUser + `","password":"` + testAdminPassword + `"}`,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected login 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &out)
	if out.Message != "Signed in successfully" {
		t.Fatalf("unexpected login message %q", out.Message)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "adminToken" {
			return out.Token, cookie
		}
	}
	t.Fatalf("expected adminToken cookie to be set")
	return "", nil
}

func submit(t *testing.T, router http.Handler, body string) int64 {
	t.Helper()
	rec := do(t, router, request{method: http.MethodPost, path: "/api/recipes", body: body})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Message  string `json:"message"`
		RecipeID int64  `json:"recipeId"`
		Status   string `json:"status"`
	}
	decodeBody(t, rec, &out)
	if out.Status != "pending" {
		t.Fatalf("expected pending status, got %q", out.Status)
	}
	if out.Message != "Recipe submitted for review" {
		t.Fatalf("unexpected message %q", out.Message)
	}
	return out.RecipeID
}

func listPublic(t *testing.T, router http.Handler, query string) []recipeJSON {
	t.Helper()
	rec := do(t, router, request{method: http.MethodGet, path: "/api/recipes" + query})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out []recipeJSON
	decodeBody(t, rec, &out)
	return out
}

const testRecipe = `{"title":"Test","description":"A test","ingredients":"a\nb","steps":"mix\nbake"}`

func TestSubmittedRecipeIsHiddenUntilApproved(t *testing.T) {
	router := newTestRouter(t, testConfig(t))

	id := submit(t, router, testRecipe)
	if got := listPublic(t, router, ""); len(got) != 0 {
		t.Fatalf("expected no public recipes, got %d", len(got))
	}

	_, cookie := login(t, router)
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("expected http-only root cookie, got %+v", cookie)
	}
	if cookie.SameSite != http.SameSiteLaxMode || cookie.Secure {
		t.Fatalf("expected lax insecure cookie outside production, got %+v", cookie)
	}

	rec := do(t, router, request{
		method: http.MethodPatch,
		path:   "/api/admin/recipes/" + strconv.FormatInt(id, 10),
		body:   `{"status":"approved"}`,
		cookie: cookie,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got := listPublic(t, router, "")
	if len(got) != 1 {
		t.Fatalf("expected 1 public recipe, got %d", len(got))
	}
	if got[0].ID != id || got[0].Status != "approved" || got[0].Category != "dinner" {
		t.Fatalf("unexpected recipe: %+v", got[0])
	}
	if len(got[0].Ingredients) != 2 || got[0].Ingredients[0] != "a" || got[0].Steps[1] != "bake" {
		t.Fatalf("unexpected lines: %+v", got[0])
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/recipes/" + strconv.FormatInt(id, 10)})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected single recipe 200, got %d", rec.Code)
	}
}

func TestUnauthenticatedPatchIsRejected(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	id := submit(t, router, testRecipe)
	path := "/api/admin/recipes/" + strconv.FormatInt(id, 10)

	rec := do(t, router, request{method: http.MethodPatch, path: path, body: `{"status":"approved"}`})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	if envelope.Error.Code != "unauthorized" {
		t.Fatalf("expected unauthorized code, got %q", envelope.Error.Code)
	}

	rec = do(t, router, request{method: http.MethodPatch, path: path, body: `{"status":"approved"}`, token: "forged"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", rec.Code)
	}

	if got := listPublic(t, router, ""); len(got) != 0 {
		t.Fatalf("expected no state change, got %d public recipes", len(got))
	}
}

func TestInvalidCategoryInsertsNothing(t *testing.T) {
	router := newTestRouter(t, testConfig(t))

	rec := do(t, router, request{
		method: http.MethodPost,
		path:   "/api/recipes",
		body:   `{"title":"Test","description":"A test","ingredients":"a","steps":"b","category":"invalid-category"}`,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	if envelope.Error.Message != "Invalid category" {
		t.Fatalf("expected invalid category message, got %q", envelope.Error.Message)
	}

	token, _ := login(t, router)
	rec = do(t, router, request{method: http.MethodGet, path: "/api/admin/recipes", token: token})
	var all []recipeJSON
	decodeBody(t, rec, &all)
	if len(all) != 0 {
		t.Fatalf("expected no rows, got %d", len(all))
	}
}

func TestAdminRecipeLifecycle(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	token, _ := login(t, router)

	id := submit(t, router, `{"title":"Stew","description":"Warm","ingredients":["beef","carrots"],"steps":"simmer","imageUrl":"https://img/x.png","serves":"4"}`)
	path := "/api/admin/recipes/" + strconv.FormatInt(id, 10)

	rec := do(t, router, request{method: http.MethodGet, path: "/api/admin/recipes?status=pending", token: token})
	var pending []recipeJSON
	decodeBody(t, rec, &pending)
	if len(pending) != 1 || pending[0].Serves == nil || *pending[0].Serves != 4 {
		t.Fatalf("expected one pending recipe serving 4, got %+v", pending)
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/admin/recipes?status=bogus", token: token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status filter, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodPatch, path: path, body: `{"imageUrl":null,"serves":null}`, token: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Message string     `json:"message"`
		Recipe  recipeJSON `json:"recipe"`
	}
	decodeBody(t, rec, &updated)
	if updated.Recipe.ImageURL != nil || updated.Recipe.Serves != nil {
		t.Fatalf("expected cleared fields, got %+v", updated.Recipe)
	}
	if updated.Recipe.Title != "Stew" {
		t.Fatalf("expected untouched title, got %q", updated.Recipe.Title)
	}

	rec = do(t, router, request{method: http.MethodPatch, path: path, body: `{}`, token: token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodPatch, path: path, body: `{"serves":"lots"}`, token: token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric serves, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodPatch, path: "/api/admin/recipes/abc", body: `{"title":"x"}`, token: token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodDelete, path: path, token: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected delete 200, got %d", rec.Code)
	}
	rec = do(t, router, request{method: http.MethodDelete, path: path, token: token})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	token, cookie := login(t, router)

	rec := do(t, router, request{method: http.MethodGet, path: "/api/admin/check-auth", cookie: cookie})
	var check struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, rec, &check)
	if !check.Authenticated {
		t.Fatalf("expected authenticated session")
	}

	rec = do(t, router, request{method: http.MethodPost, path: "/api/admin/logout", token: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected logout 200, got %d", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "adminToken" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected cookie to be cleared")
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/admin/check-auth", cookie: cookie})
	decodeBody(t, rec, &check)
	if check.Authenticated {
		t.Fatalf("expected session to be gone after logout")
	}
}

func TestLoginFailures(t *testing.T) {
	router := newTestRouter(t, testConfig(t))

	rec := do(t, router, request{method: http.MethodPost, path: "/api/admin/login", body: `{"username":"admin","password":"nope"}`})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodPost, path: "/api/admin/login", body: `{"username":"admin"}`})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodPost, path: "/api/admin/login", body: `{"username":`})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", rec.Code)
	}
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	if envelope.Error.Code != "invalid_json" {
		t.Fatalf("expected invalid_json, got %q", envelope.Error.Code)
	}
}

func TestAdminRoutesFailWithoutCredentials(t *testing.T) {
	cfg := testConfig(t)
	cfg.Admin = config.AdminConfig{}
	router := newTestRouter(t, cfg)

	rec := do(t, router, request{method: http.MethodGet, path: "/api/admin/recipes", token: "anything"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	if envelope.Error.Code != "auth_not_configured" {
		t.Fatalf("expected auth_not_configured, got %q", envelope.Error.Code)
	}

	rec = do(t, router, request{method: http.MethodPost, path: "/api/admin/login", body: `{"username":"a","password":"b"}`})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from login, got %d", rec.Code)
	}
}

func TestFamilyPublishing(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	token, _ := login(t, router)

	rec := do(t, router, request{method: http.MethodPost, path: "/api/admin/family", token: token, body: `{"title":"Reunion","summary":"Everyone came"}`})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var published struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &published)

	rec = do(t, router, request{method: http.MethodPost, path: "/api/admin/family", token: token, body: `{"title":"Clip","summary":"x","mediaType":"podcast"}`})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad media type, got %d", rec.Code)
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/family"})
	var items []struct {
		ID          int64  `json:"id"`
		MediaType   string `json:"mediaType"`
		IsPublished bool   `json:"isPublished"`
	}
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].MediaType != "article" || !items[0].IsPublished {
		t.Fatalf("unexpected public entries: %+v", items)
	}

	path := "/api/admin/family/" + strconv.FormatInt(published.ID, 10)
	rec = do(t, router, request{method: http.MethodPatch, path: path, token: token, body: `{"isPublished":"false"}`})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/family"})
	decodeBody(t, rec, &items)
	if len(items) != 0 {
		t.Fatalf("expected draft hidden, got %d", len(items))
	}

	rec = do(t, router, request{method: http.MethodPatch, path: "/api/admin/family/999", token: token, body: `{"title":"x"}`})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORSAndMetrics(t *testing.T) {
	router := newTestRouter(t, testConfig(t))

	rec := do(t, router, request{method: http.MethodGet, path: "/health", origin: "http://localhost:5173"})
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("expected allowed origin echoed, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("expected credentials allowed")
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/health", origin: "https://evil.example"})
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("expected no CORS headers for unknown origin")
	}

	_ = submit(t, router, testRecipe)
	rec = do(t, router, request{method: http.MethodGet, path: "/metrics"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `family_site_recipe_submissions_total{category="dinner"} 1`) {
		t.Fatalf("expected submission counter in metrics output")
	}
	if !strings.Contains(body, `route="/api/recipes"`) {
		t.Fatalf("expected route pattern label in metrics output")
	}
}

func TestSearchFindsExactNonASCIITitle(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	token, _ := login(t, router)

	pie := submit(t, router, `{"title":"Apple Pie","description":"Classic","ingredients":"apples","steps":"bake"}`)
	kuchen := submit(t, router, `{"title":"ÄPFEL Kuchen","description":"Omas Rezept","ingredients":"Äpfel","steps":"backen"}`)
	for _, id := range []int64{pie, kuchen} {
		rec := do(t, router, request{
			method: http.MethodPatch,
			path:   "/api/admin/recipes/" + strconv.FormatInt(id, 10),
			body:   `{"status":"approved"}`,
			token:  token,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected approve 200, got %d", rec.Code)
		}
	}

	got := listPublic(t, router, "?search=%C3%84PFEL")
	if len(got) != 1 || got[0].ID != kuchen {
		t.Fatalf("expected only the kuchen recipe, got %+v", got)
	}

	got = listPublic(t, router, "?search=apple")
	if len(got) != 1 || got[0].ID != pie {
		t.Fatalf("expected only the apple pie, got %+v", got)
	}
}

func TestStatusMustMatchExactly(t *testing.T) {
	router := newTestRouter(t, testConfig(t))
	token, _ := login(t, router)
	id := submit(t, router, testRecipe)

	rec := do(t, router, request{
		method: http.MethodPatch,
		path:   "/api/admin/recipes/" + strconv.FormatInt(id, 10),
		body:   `{"status":"APPROVED"}`,
		token:  token,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for uppercase status, got %d", rec.Code)
	}
	var envelope errorEnvelope
	decodeBody(t, rec, &envelope)
	if envelope.Error.Message != "Invalid status" {
		t.Fatalf("expected invalid status message, got %q", envelope.Error.Message)
	}

	rec = do(t, router, request{method: http.MethodGet, path: "/api/admin/recipes?status=%20", token: token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank status filter, got %d", rec.Code)
	}

	if got := listPublic(t, router, ""); len(got) != 0 {
		t.Fatalf("expected recipe to stay pending, got %d public", len(got))
	}
}
