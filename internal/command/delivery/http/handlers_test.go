package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-commander/internal/backend"
	"voice-commander/internal/command"
	"voice-commander/internal/history"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// mockUseCase returns a canned envelope and records the request it was given.
type mockUseCase struct {
	env     command.Envelope
	calls   int
	lastReq command.Request
}

func (m *mockUseCase) Route(ctx context.Context, req command.Request) command.Envelope {
	m.calls++
	m.lastReq = req
	return m.env
}

type stubSpecialist struct{}

func (s *stubSpecialist) Generate(ctx context.Context, prompt, system string) (string, error) {
	return "", nil
}
func (s *stubSpecialist) Name() string  { return "stub" }
func (s *stubSpecialist) Model() string { return "stub-model" }

func newTestHandler(uc command.UseCase, reg *backend.Registry, hist *history.Service) Handler {
	if reg == nil {
		reg = backend.NewRegistry(&mockLogger{})
	}
	if hist == nil {
		hist, _ = history.New(10, &mockLogger{})
	}
	return New(&mockLogger{}, uc, reg, hist)
}

func doJSON(h gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	c.Request = httptest.NewRequest(method, target, buf)
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func TestProcess(t *testing.T) {
	t.Run("missing input rejected before routing", func(t *testing.T) {
		uc := &mockUseCase{}
		h := newTestHandler(uc, nil, nil)

		w := doJSON(h.Process, http.MethodPost, "/api/v1/voice", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Errorf("usecase must not be invoked, got %d calls", uc.calls)
		}
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		uc := &mockUseCase{}
		h := newTestHandler(uc, nil, nil)

		w := doJSON(h.Process, http.MethodPost, "/api/v1/voice", `{"textInput": "hi", "mode": "chat"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope returned unwrapped", func(t *testing.T) {
		uc := &mockUseCase{env: command.Envelope{
			Translation:      "open the camera",
			Intent:           command.IntentOpenCamera,
			Confidence:       0.93,
			Response:         "open the camera",
			BackendUsed:      command.BackendClassifier,
			ProcessingTimeMs: 12,
		}}
		h := newTestHandler(uc, nil, nil)

		w := doJSON(h.Process, http.MethodPost, "/api/v1/voice", `{"textInput": "ক্যামেরা খোলো"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body["intent"] != "open_camera" {
			t.Errorf("expected intent open_camera, got %v", body["intent"])
		}
		if body["backendUsed"] != "classifier" {
			t.Errorf("expected backendUsed classifier, got %v", body["backendUsed"])
		}
		if _, wrapped := body["error_code"]; wrapped {
			t.Error("envelope must not be wrapped in the standard response body")
		}
	})

	t.Run("defaults applied to optional fields", func(t *testing.T) {
		uc := &mockUseCase{}
		h := newTestHandler(uc, nil, nil)

		doJSON(h.Process, http.MethodPost, "/api/v1/voice", `{"textInput": "hello"}`)

		if uc.lastReq.Mode != command.ModeAgent {
			t.Errorf("expected agent mode default, got %s", uc.lastReq.Mode)
		}
		if uc.lastReq.Language != command.LanguageBangla {
			t.Errorf("expected bn language default, got %s", uc.lastReq.Language)
		}
	})

	t.Run("error envelope still returns 200", func(t *testing.T) {
		uc := &mockUseCase{env: command.Envelope{
			Intent:      command.IntentGeneral,
			Response:    "Sorry, I encountered an error processing your command.",
			BackendUsed: command.BackendNone,
			Error:       "classification failed",
		}}
		h := newTestHandler(uc, nil, nil)

		w := doJSON(h.Process, http.MethodPost, "/api/v1/voice", `{"textInput": "hi"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "classification failed" {
			t.Errorf("expected error field in envelope, got %v", body["error"])
		}
	})
}

func TestStatus(t *testing.T) {
	reg := backend.NewRegistry(&mockLogger{})
	reg.Register(command.BackendCode, &stubSpecialist{})
	h := newTestHandler(&mockUseCase{}, reg, nil)

	w := doJSON(h.Status, http.MethodGet, "/api/v1/voice", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Status     string          `json:"status"`
			Configured map[string]bool `json:"configured"`
			Ready      bool            `json:"ready"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data.Status != "ok" || !body.Data.Ready {
		t.Errorf("expected ok/ready, got %+v", body.Data)
	}
	if !body.Data.Configured["classifier"] || !body.Data.Configured["code-backend"] {
		t.Errorf("expected classifier and code configured, got %v", body.Data.Configured)
	}
	if body.Data.Configured["research-backend"] {
		t.Errorf("research backend must be unconfigured, got %v", body.Data.Configured)
	}
}

func TestHistory(t *testing.T) {
	hist, _ := history.New(10, &mockLogger{})
	hist.Record(context.Background(), history.Entry{
		Translation: "first",
		Intent:      command.IntentGeneral,
		BackendUsed: command.BackendClassifier,
	})
	hist.Record(context.Background(), history.Entry{
		Translation: "second",
		Intent:      command.IntentCodingTask,
		BackendUsed: command.BackendCode,
	})
	h := newTestHandler(&mockUseCase{}, nil, hist)

	w := doJSON(h.History, http.MethodGet, "/api/v1/history?limit=1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Entries []struct {
				Translation string `json:"translation"`
				Intent      string `json:"intent"`
			} `json:"entries"`
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data.Count != 1 {
		t.Fatalf("expected 1 entry, got %d", body.Data.Count)
	}
	if body.Data.Entries[0].Translation != "second" {
		t.Errorf("expected newest first, got %q", body.Data.Entries[0].Translation)
	}
}
