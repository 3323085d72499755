package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	hiring "gigflow/internal/hiringService"
	model "gigflow/internal/models"
	"gigflow/internal/notify"
	"gigflow/internal/repository"
	"gigflow/internal/server"

	"github.com/gin-gonic/gin"
)

// TestEnv bundles the wired application with the pieces tests poke at
// directly: the in-memory repository and the connection registry.
type TestEnv struct {
	Router   *gin.Engine
	Repo     *repository.MemoryRepo
	Registry *notify.Registry
}

// SetupTestEnv initializes the full router with in-memory storage for
// integration testing.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	registry := notify.NewRegistry()
	dispatcher := notify.NewDispatcher(registry)
	service := hiring.NewHiringService(repo)
	router := server.SetupRouter(service, registry, dispatcher, 8)
	return &TestEnv{Router: router, Repo: repo, Registry: registry}
}

// ExecuteRequest executes an HTTP request as the given user and returns
// the response recorder. A zero user sends no identity headers.
func ExecuteRequest(t *testing.T, env *TestEnv, method, url string, body any, user model.User) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if user.UserID != "" {
		req.Header.Set("X-User-ID", user.UserID)
		req.Header.Set("X-User-Name", user.Username)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the JSON envelope,
// returning the data payload for 2xx responses.
func ExecuteRequestAndParse(t *testing.T, env *TestEnv, method, url string, body any, user model.User) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, env, method, url, body, user)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}
	return resp, w
}
