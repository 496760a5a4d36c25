package web

import (
	"resume-client/internal/preview"
	"resume-client/internal/presenter"
	"resume-client/internal/session"
	"resume-client/internal/workflow"
)

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	workflow.Snapshot
	Accept  []string         `json:"accept"`
	Preview *preview.Preview `json:"preview,omitempty"`
	Results *presenter.View  `json:"results,omitempty"`
}

type descriptionRequest struct {
	JobDescription *string `json:"jobDescription"`
}

func (h *Handler) render(sess *session.Session) sessionResponse {
	snap := sess.Workflow.Snapshot()
	resp := sessionResponse{
		SessionID: sess.ID,
		Snapshot:  snap,
		Accept:    preview.AdvisoryAccept,
	}
	if snap.FileName != "" {
		resp.Preview = sess.Preview()
	}
	if snap.State == workflow.ShowingResults {
		if view, ok := h.Presenter.Present(snap.Result); ok {
			resp.Results = &view
		}
	}
	return resp
}
