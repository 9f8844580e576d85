package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unibot/internal/chat/repository"
	"unibot/internal/intent"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, arg ...interface{})                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...interface{})                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...interface{})                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...interface{})                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...interface{})  {}

func TestQueryReply(t *testing.T) {
	opt := repository.QueryReplyOptions{
		Intent: &intent.Detected{
			Name:          intent.NameSchedule,
			Confidence:    1,
			MatchedPhrase: "jadwal besok",
			Filters:       &intent.Filters{RelativeDay: "tomorrow"},
		},
		GroupJID:  "120363012345678901@g.us",
		SenderJID: "628123456789@s.whatsapp.net",
		Message:   "jadwal besok",
		ClassID:   "class-1",
	}

	t.Run("forwards payload and decodes reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/api/internal/wa/reply" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if got := r.Header.Get("X-Internal-Secret"); got != "s3cret" {
				t.Errorf("X-Internal-Secret = %q", got)
			}

			var body struct {
				Intent  *intent.Detected `json:"intent"`
				Context struct {
					GroupJID  string `json:"groupJid"`
					SenderJID string `json:"senderJid"`
					Message   string `json:"message"`
					ClassID   string `json:"classId"`
				} `json:"context"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if body.Intent == nil || body.Intent.Name != intent.NameSchedule {
				t.Errorf("intent = %+v", body.Intent)
			}
			if body.Intent.Filters == nil || body.Intent.Filters.RelativeDay != "tomorrow" {
				t.Errorf("filters = %+v, want relativeDay tomorrow", body.Intent.Filters)
			}
			if body.Context.ClassID != "class-1" {
				t.Errorf("classId = %q", body.Context.ClassID)
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"message":  "🗓️ Jadwal besok: Algoritma 08:00",
				"mentions": []string{opt.SenderJID},
			})
		}))
		defer srv.Close()

		repo := New(&mockLogger{}, srv.URL, "s3cret", 5*time.Second)
		got, err := repo.QueryReply(context.Background(), opt)
		if err != nil {
			t.Fatalf("QueryReply: %v", err)
		}
		if !got.Handled {
			t.Error("Handled = false, want true")
		}
		if got.Text != "🗓️ Jadwal besok: Algoritma 08:00" {
			t.Errorf("Text = %q", got.Text)
		}
		if len(got.Mentions) != 1 || got.Mentions[0] != opt.SenderJID {
			t.Errorf("Mentions = %v", got.Mentions)
		}
	})

	t.Run("decodes register side channel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message":  "✅ terhubung",
				"register": map[string]string{"classId": "class-9", "className": "TI-3A"},
			})
		}))
		defer srv.Close()

		repo := New(&mockLogger{}, srv.URL, "s3cret", 5*time.Second)
		got, err := repo.QueryReply(context.Background(), opt)
		if err != nil {
			t.Fatalf("QueryReply: %v", err)
		}
		if got.RegisterClassID != "class-9" || got.RegisterName != "TI-3A" {
			t.Errorf("register = %q %q", got.RegisterClassID, got.RegisterName)
		}
	})

	t.Run("empty body means not handled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{}"))
		}))
		defer srv.Close()

		repo := New(&mockLogger{}, srv.URL, "s3cret", 5*time.Second)
		got, err := repo.QueryReply(context.Background(), opt)
		if err != nil {
			t.Fatalf("QueryReply: %v", err)
		}
		if got.Handled {
			t.Error("Handled = true, want false")
		}
	})

	t.Run("non-json body means not handled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		}))
		defer srv.Close()

		repo := New(&mockLogger{}, srv.URL, "s3cret", 5*time.Second)
		got, err := repo.QueryReply(context.Background(), opt)
		if err != nil {
			t.Fatalf("QueryReply: %v", err)
		}
		if got.Handled {
			t.Error("Handled = true, want false")
		}
	})

	t.Run("server error returns ErrUnexpectedStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		repo := New(&mockLogger{}, srv.URL, "s3cret", 5*time.Second)
		if _, err := repo.QueryReply(context.Background(), opt); !errors.Is(err, repository.ErrUnexpectedStatus) {
			t.Errorf("err = %v, want ErrUnexpectedStatus", err)
		}
	})

	t.Run("unreachable server returns error", func(t *testing.T) {
		repo := New(&mockLogger{}, "http://127.0.0.1:1", "s3cret", time.Second)
		if _, err := repo.QueryReply(context.Background(), opt); err == nil {
			t.Error("err = nil, want transport error")
		}
	})
}
