package http

import (
	"unibot/internal/intent"
	"unibot/internal/wareply"
)

// replyReq mirrors the worker's wire format. Field names are fixed;
// both sides marshal the same camelCase keys.
type replyReq struct {
	Intent  *intent.Detected `json:"intent"`
	Context replyContext     `json:"context"`
}

type replyContext struct {
	GroupJID  string `json:"groupJid"`
	SenderJID string `json:"senderJid"`
	Message   string `json:"message"`
	ClassID   string `json:"classId"`
}

func (r replyReq) toInput() wareply.ReplyInput {
	return wareply.ReplyInput{
		Intent:    r.Intent,
		GroupJID:  r.Context.GroupJID,
		SenderJID: r.Context.SenderJID,
		Message:   r.Context.Message,
		ClassID:   r.Context.ClassID,
	}
}

// replyResp is sent as-is, without the standard response envelope. An
// unhandled intent serializes to an empty JSON object.
type replyResp struct {
	Message  string        `json:"message,omitempty"`
	Mentions []string      `json:"mentions,omitempty"`
	Register *registerResp `json:"register,omitempty"`
}

type registerResp struct {
	ClassID   string `json:"classId"`
	ClassName string `json:"className,omitempty"`
}

func newReplyResp(out wareply.ReplyOutput) replyResp {
	resp := replyResp{
		Message:  out.Message,
		Mentions: out.Mentions,
	}
	if out.Register != nil {
		resp.Register = &registerResp{
			ClassID:   out.Register.ClassID,
			ClassName: out.Register.ClassName,
		}
	}
	return resp
}
