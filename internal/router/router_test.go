package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growthpoints/config"
	"github.com/oksasatya/growthpoints/internal/container"
	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/infrastructure/identity"
	"github.com/oksasatya/growthpoints/internal/infrastructure/memory"
)

type staticVerifier struct{}

func (staticVerifier) Verify(_ context.Context, credential string) (*entity.Identity, error) {
	if credential != "tok-u1" {
		return nil, identity.ErrInvalidToken
	}
	return &entity.Identity{ID: "u1"}, nil
}

func newTestEngine(t *testing.T, store *memory.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	container.SetConfig(&config.Config{DebugMetricsEnabled: true})
	container.SetLogger(log)
	container.SetUnitOfWork(store)
	container.SetVerifier(staticVerifier{})
	container.SetCompleter(nil)
	container.SetRedis(nil)
	container.SetRabbitPub(nil)

	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_ClaimScenario(t *testing.T) {
	store := memory.NewStore()
	store.PutProfile(entity.Profile{ID: "u1"})
	store.PutTask(entity.Task{ID: "t1", AssignedTo: "u1", Status: entity.TaskOpen, Points: 50})
	r := newTestEngine(t, store)

	w := call(r, http.MethodPost, "/api/tasks/claim", "tok-u1", `{"taskId":"t1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	p, _ := store.Profile("u1")
	assert.Equal(t, int64(50), p.Points)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	r := newTestEngine(t, memory.NewStore())
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/tasks/claim"},
		{http.MethodPut, "/api/tasks/claim"},
		{http.MethodGet, "/api/chat"},
		{http.MethodDelete, "/api/profile"},
	} {
		w := call(r, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	}
}

func TestRoutes_ChatWithoutKey(t *testing.T) {
	r := newTestEngine(t, memory.NewStore())
	w := call(r, http.MethodPost, "/api/chat", "", `{"message":"Hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"OpenAI key not set"}`, w.Body.String())
}

func TestRoutes_HealthAndNotFound(t *testing.T) {
	r := newTestEngine(t, memory.NewStore())

	w := call(r, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(r, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_DebugVars(t *testing.T) {
	r := newTestEngine(t, memory.NewStore())
	w := call(r, http.MethodGet, "/api/debug/vars", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var vars map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
	assert.Contains(t, vars, "claims_succeeded")
	assert.Contains(t, vars, "chat_relayed")
}
