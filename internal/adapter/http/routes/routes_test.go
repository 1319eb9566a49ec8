package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"plan_appetit/internal/adapter/http/handlers"
	"plan_appetit/internal/adapter/persistence/repository"
	"plan_appetit/internal/config"
	"plan_appetit/internal/domain/entities"
	"plan_appetit/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := usecase.NewConfigurationStore(repository.NewKVMemoryRepository("test"), nil)
	return NewRouter(Handlers{
		Configuration: handlers.NewConfigurationHandler(store),
		Statistics:    handlers.NewStatisticsHandler(usecase.NewStatisticsUseCase(store)),
		Recipe:        handlers.NewRecipeHandler(usecase.NewRecipeUseCase(nil, nil)),
	}, zap.NewNop())
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_ConfigurationLifecycle(t *testing.T) {
	r := newTestRouter()

	// fresh store: one unsaved fallback configuration
	w := do(t, r, http.MethodGet, "/v1/configurations", "")
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("expected fallback list, got %s (%v)", w.Body.String(), err)
	}

	w = do(t, r, http.MethodPost, "/v1/configurations", `{"name":"Terrasse"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	id, _ := created["uuid"].(string)
	if id == "" || created["name"] != "Terrasse" {
		t.Fatalf("unexpected created configuration: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/v1/configurations", "")
	list = nil
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0]["uuid"] != id {
		t.Fatalf("expected only the created configuration, got %s", w.Body.String())
	}

	w = do(t, r, http.MethodPatch, "/v1/configurations/"+id+"/name", `{"name":"Salle"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPut, "/v1/last-viewed", `{"uuid":"`+id+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/v1/last-viewed", "")
	if !bytes.Contains(w.Body.Bytes(), []byte(id)) {
		t.Fatalf("unexpected last viewed: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/v1/configurations/"+id+"/statistics", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"configurationName":"Salle"`)) {
		t.Fatalf("unexpected statistics: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/v1/configurations/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/v1/configurations", "")
	list = nil
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0]["uuid"] == id {
		t.Fatalf("expected a new fallback after deleting everything, got %s", w.Body.String())
	}
}

func listConfigurations(t *testing.T, r *gin.Engine) []map[string]any {
	t.Helper()
	w := do(t, r, http.MethodGet, "/v1/configurations", "")
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return list
}

func TestRouter_RenameUnknownUUIDChangesNothing(t *testing.T) {
	r := newTestRouter()

	for _, name := range []string{"A", "B"} {
		if w := do(t, r, http.MethodPost, "/v1/configurations", `{"name":"`+name+`"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	}

	w := do(t, r, http.MethodPatch, "/v1/configurations/does-not-exist/name", `{"name":"Renamed"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	list := listConfigurations(t, r)
	if len(list) != 2 || list[0]["name"] != "A" || list[1]["name"] != "B" {
		t.Fatalf("no configuration may change on a rename miss, got %+v", list)
	}
}

func TestRouter_PutOnEmptyStoreKeepsOneRecord(t *testing.T) {
	r := newTestRouter()

	c := entities.NewEmptyConfiguration("x")
	c.Name = "X"
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal configuration: %v", err)
	}

	w := do(t, r, http.MethodPut, "/v1/configurations/x", string(raw))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list := listConfigurations(t, r)
	if len(list) != 1 || list[0]["uuid"] != "x" || list[0]["name"] != "X" {
		t.Fatalf("expected only the PUT record, got %+v", list)
	}
}

func TestRouter_RecipesNotConfigured(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodPost, "/v1/recipes", `{"dish":"Ratatouille","covers":4}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestNewKeyValueStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "memory", cfg: config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory, Namespace: "a"}}},
		{name: "file", cfg: config.Config{Storage: config.StorageConfig{Driver: config.DriverFile, Namespace: "a", FileDir: dir}}},
		{name: "sqlite", cfg: config.Config{
			Storage: config.StorageConfig{Driver: config.DriverSQLite, Namespace: "a"},
			SQLite:  config.SQLiteConfig{Path: filepath.Join(dir, "kv.db")},
		}},
		{name: "unsupported", cfg: config.Config{Storage: config.StorageConfig{Driver: "redis"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, closeFn, err := newKeyValueStore(ctx, &tt.cfg, zap.NewNop())
			defer closeFn()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := kv.Set(ctx, "k", "v"); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, found, err := kv.Get(ctx, "k")
			if err != nil || !found || got != "v" {
				t.Fatalf("expected v, got %q found=%v err=%v", got, found, err)
			}
		})
	}
}
