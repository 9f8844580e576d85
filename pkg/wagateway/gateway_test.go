package wagateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured SendMessageRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/messages" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("unexpected auth header %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(APIResponse{OK: true})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret")
		err := client.SendMessage("g@g.us", "halo", []string{"628@s.whatsapp.net"})
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		if captured.ChatJID != "g@g.us" || captured.Text != "halo" || len(captured.Mentions) != 1 {
			t.Errorf("unexpected payload %+v", captured)
		}
	})

	t.Run("Gateway Rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(APIResponse{OK: false, Description: "not connected"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "")
		if err := client.SendMessage("g@g.us", "halo", nil); err == nil {
			t.Errorf("expected error when gateway reports not ok")
		}
	})

	t.Run("HTTP Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "")
		if err := client.SendMessage("g@g.us", "halo", nil); err == nil {
			t.Errorf("expected error on 500 status")
		}
	})
}

func TestBulletList(t *testing.T) {
	got := BulletList([]string{"a", "b"})
	if got != "• a\n• b" {
		t.Errorf("BulletList = %q", got)
	}
}
