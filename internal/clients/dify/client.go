// Package dify is the client for the external Dify workflow runner. It is
// stateless: the runner is the source of truth for task state, and no local
// task registry exists.
package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/pkg/httpx"
)

// WorkflowKind selects one of the two named pipelines. Each kind has its own
// workflow id, credential and file-list input field; they are never
// cross-used.
type WorkflowKind string

const (
	KindDiagnostic WorkflowKind = "diagnostic"
	KindArtTherapy WorkflowKind = "art-therapy"
)

func ParseKind(s string) (WorkflowKind, error) {
	switch WorkflowKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDiagnostic:
		return KindDiagnostic, nil
	case KindArtTherapy:
		return KindArtTherapy, nil
	}
	return "", fmt.Errorf("%w: unknown workflow kind %q", apperrors.ErrInvalidRequest, s)
}

// WorkflowConfig is the per-kind endpoint identity.
type WorkflowConfig struct {
	WorkflowID string
	APIKey     string
	// FileField is the inputs key the runner expects the file manifest
	// under ("file" for diagnostic, "work_file" for art therapy).
	FileField string
}

type Config struct {
	BaseURL       string
	RunTimeout    time.Duration
	StatusTimeout time.Duration
	Workflows     map[WorkflowKind]WorkflowConfig
}

// FileInput is one manifest entry for a resolved stored file. URL must be
// absolute and reachable by the runner.
type FileInput struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	ID       string `json:"id"`
}

type RunResult struct {
	TaskID string         `json:"task_id"`
	Result map[string]any `json:"result"`
}

// TaskStatus carries the runner's status/result/error fields through
// unchanged.
type TaskStatus struct {
	TaskID string         `json:"task_id"`
	Status string         `json:"status"`
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Client interface {
	Run(ctx context.Context, kind WorkflowKind, files []FileInput, inputs map[string]any, user string) (*RunResult, error)
	GetStatus(ctx context.Context, kind WorkflowKind, taskID string) (*TaskStatus, error)
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func NewClient(baseLog *logger.Logger, cfg Config) (Client, error) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing dify base url")
	}
	if len(cfg.Workflows) == 0 {
		return nil, fmt.Errorf("no workflows configured")
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 300 * time.Second
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = 30 * time.Second
	}
	return &client{
		log:        baseLog.With("client", "DifyClient"),
		cfg:        cfg,
		httpClient: &http.Client{},
	}, nil
}

func (c *client) workflow(kind WorkflowKind) (WorkflowConfig, error) {
	wf, ok := c.cfg.Workflows[kind]
	if !ok {
		return WorkflowConfig{}, fmt.Errorf("%w: workflow kind %q not configured", apperrors.ErrInvalidRequest, kind)
	}
	return wf, nil
}

// Run invokes the runner in blocking mode and waits for the result, bounded
// by RunTimeout. The caller must already have released any entity lock: this
// call can take minutes.
func (c *client) Run(ctx context.Context, kind WorkflowKind, files []FileInput, inputs map[string]any, user string) (*RunResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to send", apperrors.ErrInvalidRequest)
	}
	wf, err := c.workflow(kind)
	if err != nil {
		return nil, err
	}

	workflowInputs := map[string]any{}
	for k, v := range inputs {
		workflowInputs[k] = v
	}
	workflowInputs[wf.FileField] = files

	payload := map[string]any{
		"inputs":        workflowInputs,
		"response_mode": "blocking",
		"user":          user,
		"workflow_id":   wf.WorkflowID,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal run payload: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, c.cfg.RunTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(runCtx, http.MethodPost, c.cfg.BaseURL+"/v1/workflows/run", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+wf.APIKey)

	c.log.Info("Running workflow", "kind", kind, "workflow_id", wf.WorkflowID, "files", len(files))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if httpx.IsTimeout(err) {
			// Upstream state unknown: the run may still complete. A
			// caller-side timeout only stops waiting.
			return nil, fmt.Errorf("%w: workflow run exceeded %s", apperrors.ErrGatewayTimeout, c.cfg.RunTimeout)
		}
		return nil, &apperrors.GatewayError{Body: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.log.Error("Workflow run rejected", "kind", kind, "status", resp.StatusCode, "body", string(raw))
		return nil, &apperrors.GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed struct {
		TaskID string         `json:"task_id"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &apperrors.GatewayError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("unparseable response: %v", err)}
	}

	taskID := parsed.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}
	result := parsed.Data
	if result == nil {
		// Some runner versions return the payload at the top level.
		var top map[string]any
		_ = json.Unmarshal(raw, &top)
		result = top
	}
	return &RunResult{TaskID: taskID, Result: result}, nil
}

// GetStatus performs a separate status lookup against the runner.
func (c *client) GetStatus(ctx context.Context, kind WorkflowKind, taskID string) (*TaskStatus, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, fmt.Errorf("%w: missing task id", apperrors.ErrInvalidRequest)
	}
	wf, err := c.workflow(kind)
	if err != nil {
		return nil, err
	}

	statusCtx, cancel := context.WithTimeout(ctx, c.cfg.StatusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(statusCtx, http.MethodGet, c.cfg.BaseURL+"/api/v1/tasks/"+taskID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+wf.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if httpx.IsTimeout(err) {
			return nil, fmt.Errorf("%w: status lookup exceeded %s", apperrors.ErrGatewayTimeout, c.cfg.StatusTimeout)
		}
		return nil, &apperrors.GatewayError{Body: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var parsed struct {
		Status string         `json:"status"`
		Result map[string]any `json:"result"`
		Error  string         `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &apperrors.GatewayError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("unparseable response: %v", err)}
	}
	status := parsed.Status
	if status == "" {
		status = "unknown"
	}
	return &TaskStatus{TaskID: taskID, Status: status, Result: parsed.Result, Error: parsed.Error}, nil
}
