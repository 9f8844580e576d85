package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"unibot/internal/chat/repository"
	"unibot/internal/intent"
)

const replyPath = "/api/internal/wa/reply"

// headerInternalSecret authenticates worker-to-dashboard calls.
const headerInternalSecret = "X-Internal-Secret"

type replyRequest struct {
	Intent  *intent.Detected `json:"intent"`
	Context replyContext     `json:"context"`
}

type replyContext struct {
	GroupJID  string `json:"groupJid"`
	SenderJID string `json:"senderJid"`
	Message   string `json:"message"`
	ClassID   string `json:"classId,omitempty"`
}

type replyResponse struct {
	Message  string   `json:"message"`
	Mentions []string `json:"mentions"`
	Register *struct {
		ClassID   string `json:"classId"`
		ClassName string `json:"className"`
	} `json:"register"`
}

// QueryReply posts the classified message to the dashboard and decodes
// its answer. A well-formed empty body means "not handled", not an error.
func (r *implRepository) QueryReply(ctx context.Context, opt repository.QueryReplyOptions) (repository.RemoteReply, error) {
	payload := replyRequest{
		Intent: opt.Intent,
		Context: replyContext{
			GroupJID:  opt.GroupJID,
			SenderJID: opt.SenderJID,
			Message:   opt.Message,
			ClassID:   opt.ClassID,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.webapi.QueryReply: marshal: %v", err)
		return repository.RemoteReply{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+replyPath, bytes.NewReader(body))
	if err != nil {
		return repository.RemoteReply{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerInternalSecret, r.secret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.l.Warnf(ctx, "chat.repository.webapi.QueryReply: request: %v", err)
		return repository.RemoteReply{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.l.Warnf(ctx, "chat.repository.webapi.QueryReply: status %d", resp.StatusCode)
		return repository.RemoteReply{}, fmt.Errorf("%w: %d", repository.ErrUnexpectedStatus, resp.StatusCode)
	}

	var decoded replyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// A dashboard that answers 200 with a non-JSON body is treated as
		// not handled so the caller can fall back.
		r.l.Warnf(ctx, "chat.repository.webapi.QueryReply: decode: %v", err)
		return repository.RemoteReply{}, nil
	}

	out := repository.RemoteReply{
		Text:     decoded.Message,
		Mentions: decoded.Mentions,
	}
	if decoded.Register != nil {
		out.RegisterClassID = decoded.Register.ClassID
		out.RegisterName = decoded.Register.ClassName
	}
	out.Handled = out.Text != "" || out.RegisterClassID != ""

	return out, nil
}
