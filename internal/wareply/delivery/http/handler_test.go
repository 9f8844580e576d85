package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"unibot/internal/middleware"
	"unibot/internal/wareply"
)

const testSecret = "shared-secret"

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	out      wareply.ReplyOutput
	err      error
	gotInput wareply.ReplyInput
}

func (m *mockUseCase) Reply(ctx context.Context, input wareply.ReplyInput) (wareply.ReplyOutput, error) {
	m.gotInput = input
	return m.out, m.err
}

func newTestRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	mw := middleware.New(mockLogger{}, "", testSecret)
	RegisterRoutes(r.Group("/api/internal"), New(mockLogger{}, uc), mw)
	return r
}

func postReply(r *gin.Engine, body, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/internal/wa/reply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Internal-Secret", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReplyEndpoint(t *testing.T) {
	body := `{
		"intent": {"name": "schedule", "confidence": 1, "matchedPhrase": "jadwal", "filters": {"relativeDay": "tomorrow"}},
		"context": {"groupJid": "123@g.us", "senderJid": "628123456789@s.whatsapp.net", "message": "jadwal besok"}
	}`

	t.Run("rejects a missing secret", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := postReply(r, body, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := postReply(r, body, "nope")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := postReply(r, `{"intent":`, testSecret)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("forwards the payload and returns the bare reply", func(t *testing.T) {
		uc := &mockUseCase{out: wareply.ReplyOutput{
			Message:  "@628123456789 🗓️ ini jadwal besok:",
			Mentions: []string{"628123456789@s.whatsapp.net"},
		}}
		r := newTestRouter(uc)

		w := postReply(r, body, testSecret)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		if uc.gotInput.GroupJID != "123@g.us" || uc.gotInput.Message != "jadwal besok" {
			t.Errorf("input = %+v", uc.gotInput)
		}
		if uc.gotInput.Intent == nil || uc.gotInput.Intent.Filters == nil ||
			uc.gotInput.Intent.Filters.RelativeDay != "tomorrow" {
			t.Errorf("intent = %+v", uc.gotInput.Intent)
		}

		var resp map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if _, ok := resp["error_code"]; ok {
			t.Error("reply must not use the standard response envelope")
		}
		if _, ok := resp["message"]; !ok {
			t.Error("message field missing")
		}
	})

	t.Run("unhandled intent serializes to an empty object", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := postReply(r, body, testSecret)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != "{}" {
			t.Errorf("body = %q, want {}", w.Body.String())
		}
	})

	t.Run("register result includes class info", func(t *testing.T) {
		uc := &mockUseCase{out: wareply.ReplyOutput{
			Message:  "@628123456789 🎉 kelas SI-A udah resmi nyambung ke grup ini. Thanks udah bantu setup!",
			Mentions: []string{"628123456789@s.whatsapp.net"},
			Register: &wareply.RegisterOutput{ClassID: "cls-1", ClassName: "SI-A"},
		}}
		r := newTestRouter(uc)

		w := postReply(r, body, testSecret)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp struct {
			Register *struct {
				ClassID   string `json:"classId"`
				ClassName string `json:"className"`
			} `json:"register"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Register == nil || resp.Register.ClassID != "cls-1" || resp.Register.ClassName != "SI-A" {
			t.Errorf("register = %+v", resp.Register)
		}
	})
}
