package dify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Workflows: map[WorkflowKind]WorkflowConfig{
			KindDiagnostic: {WorkflowID: "wf-diagnostic", APIKey: "key-diagnostic", FileField: "file"},
			KindArtTherapy: {WorkflowID: "wf-art", APIKey: "key-art", FileField: "work_file"},
		},
	}
}

func TestParseKind(t *testing.T) {
	if _, err := ParseKind("diagnostic"); err != nil {
		t.Fatalf("diagnostic: %v", err)
	}
	if _, err := ParseKind(" Art-Therapy "); err != nil {
		t.Fatalf("art-therapy: %v", err)
	}
	if _, err := ParseKind("bogus"); !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("bogus kind err=%v, want ErrInvalidRequest", err)
	}
}

func TestRunBuildsKindSpecificRequest(t *testing.T) {
	type seen struct {
		auth string
		body map[string]any
	}
	var got seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"task_id": "task-123",
			"data":    map[string]any{"answer": "ok"},
		})
	}))
	defer srv.Close()

	c, err := NewClient(testLogger(t), testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	files := []FileInput{{URL: "http://files/a.png", Filename: "a.png", Type: "image", Size: 10, ID: "f1"}}
	res, err := c.Run(context.Background(), KindArtTherapy, files, map[string]any{"style": "healing"}, "user-9")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TaskID != "task-123" {
		t.Fatalf("task id=%q, want task-123", res.TaskID)
	}
	if res.Result["answer"] != "ok" {
		t.Fatalf("result=%v, want answer ok", res.Result)
	}

	if got.auth != "Bearer key-art" {
		t.Fatalf("auth=%q, want art-therapy credential", got.auth)
	}
	if got.body["workflow_id"] != "wf-art" {
		t.Fatalf("workflow_id=%v, want wf-art", got.body["workflow_id"])
	}
	if got.body["response_mode"] != "blocking" {
		t.Fatalf("response_mode=%v, want blocking", got.body["response_mode"])
	}
	if got.body["user"] != "user-9" {
		t.Fatalf("user=%v, want user-9", got.body["user"])
	}
	inputs, ok := got.body["inputs"].(map[string]any)
	if !ok {
		t.Fatalf("inputs missing: %v", got.body)
	}
	if inputs["style"] != "healing" {
		t.Fatalf("caller inputs not merged: %v", inputs)
	}
	if _, ok := inputs["work_file"]; !ok {
		t.Fatalf("art-therapy manifest must use work_file, got keys %v", inputs)
	}
	if _, ok := inputs["file"]; ok {
		t.Fatal("diagnostic file field must not leak into art-therapy request")
	}
}

func TestRunGeneratesTaskIDWhenAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"x": 1.0}})
	}))
	defer srv.Close()

	c, _ := NewClient(testLogger(t), testConfig(srv.URL))
	res, err := c.Run(context.Background(), KindDiagnostic, []FileInput{{ID: "f1"}}, nil, "u")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TaskID == "" {
		t.Fatal("task id must be generated when the runner omits one")
	}
}

func TestRunEmptyFiles(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c, _ := NewClient(testLogger(t), testConfig(srv.URL))
	_, err := c.Run(context.Background(), KindDiagnostic, nil, nil, "u")
	if !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("err=%v, want ErrInvalidRequest", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("runner must not be contacted for an empty file list")
	}
}

func TestRunUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad workflow input", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c, _ := NewClient(testLogger(t), testConfig(srv.URL))
	_, err := c.Run(context.Background(), KindDiagnostic, []FileInput{{ID: "f1"}}, nil, "u")

	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("err=%v, want GatewayError", err)
	}
	if ge.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d, want 422", ge.StatusCode)
	}
	if ge.Body == "" {
		t.Fatal("upstream body must be carried through")
	}
}

func TestRunTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RunTimeout = 20 * time.Millisecond
	c, _ := NewClient(testLogger(t), cfg)

	_, err := c.Run(context.Background(), KindDiagnostic, []FileInput{{ID: "f1"}}, nil, "u")
	if !errors.Is(err, apperrors.ErrGatewayTimeout) {
		t.Fatalf("err=%v, want ErrGatewayTimeout", err)
	}
}

func TestGetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tasks/task-7" {
			t.Errorf("path=%q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-diagnostic" {
			t.Errorf("auth=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "succeeded",
			"result": map[string]any{"text": "done"},
		})
	}))
	defer srv.Close()

	c, _ := NewClient(testLogger(t), testConfig(srv.URL))
	st, err := c.GetStatus(context.Background(), KindDiagnostic, "task-7")
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.TaskID != "task-7" || st.Status != "succeeded" {
		t.Fatalf("status=%+v", st)
	}
	if st.Result["text"] != "done" {
		t.Fatalf("result=%v", st.Result)
	}
}

func TestGetStatusEmptyID(t *testing.T) {
	c, _ := NewClient(testLogger(t), testConfig("http://unused"))
	_, err := c.GetStatus(context.Background(), KindDiagnostic, "  ")
	if !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("err=%v, want ErrInvalidRequest", err)
	}
}

func TestGetStatusUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such task", http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := NewClient(testLogger(t), testConfig(srv.URL))
	_, err := c.GetStatus(context.Background(), KindDiagnostic, "task-x")
	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) || ge.StatusCode != http.StatusNotFound {
		t.Fatalf("err=%v, want GatewayError 404", err)
	}
}
