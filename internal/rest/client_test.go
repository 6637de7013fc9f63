package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListConversations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/conversations/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":42,"subject":"Printer broken","kind":"ticket","unread_count":2,"last_message_at":"2026-08-24T10:00:00Z","last_message_preview":"any update?"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "tok" })
	convs, err := c.ListConversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 || convs[0].ID != 42 || convs[0].UnreadCount != 2 {
		t.Errorf("conversations = %+v", convs)
	}
}

func TestListMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/conversations/42/messages/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"conversation_id":42,"sender_id":9,"sender_name":"alice","content":"hello","message_type":"text","created_at":"2026-08-24T10:00:00Z"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "tok" })
	msgs, err := c.ListMessages(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].ID != 7 || msgs[0].Content != "hello" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestListMessagesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "expired" })
	if _, err := c.ListMessages(context.Background(), 42); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestUploadAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat/attachments/" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		if got := r.FormValue("conversation_id"); got != "42" {
			t.Errorf("conversation_id = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatal(err)
		}
		defer func() { _ = f.Close() }()
		if hdr.Filename != "report.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"file_name":"report.pdf","url":"/media/report.pdf"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "tok" })
	att, err := c.UploadAttachment(context.Background(), 42, "report.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if att.ID != 3 || att.FileName != "report.pdf" {
		t.Errorf("attachment = %+v", att)
	}
}

func TestNoCredentialSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "" })
	if _, err := c.ListConversations(context.Background()); err != nil {
		t.Fatal(err)
	}
}
