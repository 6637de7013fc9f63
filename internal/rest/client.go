// Package rest is the client for the service desk REST API: the
// authoritative source the cache refetches from, plus attachment
// upload. CRUD pages talk to the same API; this core only needs the
// conversation/message read paths and the upload trigger.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Conversation is the API representation of a conversation summary.
type Conversation struct {
	ID                 int64  `json:"id"`
	Subject            string `json:"subject"`
	Kind               string `json:"kind"`
	UnreadCount        int    `json:"unread_count"`
	LastMessageAt      string `json:"last_message_at"`
	LastMessagePreview string `json:"last_message_preview"`
}

// Message is the API representation of a message.
type Message struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversation_id"`
	SenderID       int64  `json:"sender_id"`
	SenderName     string `json:"sender_name"`
	Content        string `json:"content"`
	MessageType    string `json:"message_type"`
	ReplyToID      int64  `json:"reply_to_id"`
	Edited         bool   `json:"edited"`
	Deleted        bool   `json:"deleted"`
	CreatedAt      string `json:"created_at"`
}

// Attachment identifies an uploaded file the server can link to a send.
type Attachment struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// Client talks to the service desk REST API with a bearer credential.
type Client struct {
	baseURL string
	token   func() string
	http    *http.Client
}

// NewClient creates a REST client. token is consulted per request so a
// refreshed credential takes effect without rebuilding the client.
func NewClient(baseURL string, token func() string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListConversations fetches the conversation summary list.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var out []Conversation
	if err := c.getJSON(ctx, "/api/chat/conversations/", &out); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return out, nil
}

// ListMessages fetches one conversation's messages in authoritative order.
func (c *Client) ListMessages(ctx context.Context, conversationID int64) ([]Message, error) {
	var out []Message
	path := fmt.Sprintf("/api/chat/conversations/%d/messages/", conversationID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}

// UploadAttachment uploads one file as multipart form data and returns
// the server's attachment reference. The call suspends until the
// payload is accepted.
func (c *Client) UploadAttachment(ctx context.Context, conversationID int64, fileName string, r io.Reader) (*Attachment, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("conversation_id", fmt.Sprintf("%d", conversationID)); err != nil {
		return nil, fmt.Errorf("write field: %w", err)
	}
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat/attachments/", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload attachment: unexpected status %d", resp.StatusCode)
	}

	var att Attachment
	if err := json.NewDecoder(resp.Body).Decode(&att); err != nil {
		return nil, fmt.Errorf("decode attachment response: %w", err)
	}
	return &att, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}
