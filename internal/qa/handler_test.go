package qa

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"knowledge-backend/internal/knowledge"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestAskEndpoint(t *testing.T) {
	repo := fixedRepo{recs: []knowledge.Record{{Content: "Quenching hardens steel.", Source: "metallurgy"}}}
	router := newTestRouter(&Service{Repo: repo, LLM: &captureLLM{answer: "By quenching."}})

	payload := bytes.NewBufferString(`{"question":"How is steel hardened?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var parsed struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if parsed.Answer != "By quenching." {
		t.Fatalf("unexpected answer: %q", parsed.Answer)
	}
}

func TestAskEndpointEmptyStore(t *testing.T) {
	router := newTestRouter(&Service{Repo: fixedRepo{}, LLM: &captureLLM{}})

	payload := bytes.NewBufferString(`{"question":"Anything?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "knowledge_base_empty") {
		t.Fatalf("expected knowledge_base_empty code, got %s", resp.Body.String())
	}
}

func TestAskEndpointBlankQuestion(t *testing.T) {
	router := newTestRouter(&Service{Repo: fixedRepo{}, LLM: &captureLLM{}})

	payload := bytes.NewBufferString(`{"question":"  "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
