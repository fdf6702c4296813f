package http

import (
	"voice-commander/internal/command"
	"voice-commander/internal/history"
	"voice-commander/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	TextInput   string `json:"textInput"`
	AudioBase64 string `json:"audioBase64"`
	AudioMIME   string `json:"audioMime"`
	Mode        string `json:"mode"     binding:"omitempty,oneof=agent translate_only"`
	Language    string `json:"language" binding:"omitempty,oneof=bn en banglish"`
	Context     string `json:"context"`
}

func (r processReq) validate() error {
	if r.TextInput == "" && r.AudioBase64 == "" {
		return command.ErrNoInput
	}
	return nil
}

func (r processReq) toInput() command.Request {
	mode := command.Mode(r.Mode)
	if mode == "" {
		mode = command.ModeAgent
	}
	language := command.Language(r.Language)
	if language == "" {
		language = command.LanguageBangla
	}
	return command.Request{
		AudioBase64: r.AudioBase64,
		AudioMIME:   r.AudioMIME,
		Text:        r.TextInput,
		Mode:        mode,
		Language:    language,
		Context:     r.Context,
	}
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) limit() int {
	if r.Limit <= 0 || r.Limit > 100 {
		return 20
	}
	return r.Limit
}

// --- Response DTOs ---

// The Process endpoint returns command.Envelope verbatim: its field names are
// the compatibility surface for every client, so no presenter remapping.

type statusResp struct {
	Status     string          `json:"status"`
	Endpoint   string          `json:"endpoint"`
	Configured map[string]bool `json:"configured"`
	Ready      bool            `json:"ready"`
}

type historyEntryResp struct {
	ID          string            `json:"id"`
	Timestamp   response.DateTime `json:"timestamp"`
	Translation string            `json:"translation"`
	Intent      command.Intent    `json:"intent"`
	BackendUsed command.Backend   `json:"backendUsed"`
	Response    string            `json:"response"`
	DurationMs  int64             `json:"durationMs"`
	Error       string            `json:"error,omitempty"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Count   int                `json:"count"`
}

func newHistoryResp(entries []history.Entry) historyResp {
	out := make([]historyEntryResp, len(entries))
	for i, e := range entries {
		out[i] = historyEntryResp{
			ID:          e.ID,
			Timestamp:   response.DateTime(e.Timestamp),
			Translation: e.Translation,
			Intent:      e.Intent,
			BackendUsed: e.BackendUsed,
			Response:    e.Response,
			DurationMs:  e.DurationMs,
			Error:       e.Error,
		}
	}
	return historyResp{Entries: out, Count: len(out)}
}
