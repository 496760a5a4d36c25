package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-client/internal/analyzer"
	"resume-client/internal/preview"
	"resume-client/internal/presenter"
	"resume-client/internal/session"
	"resume-client/internal/shared/server/middleware"
	"resume-client/internal/shared/server/respond"
	"resume-client/internal/shared/util"
	"resume-client/internal/workflow"
)

const (
	DefaultMaxUploadBytes = 10 << 20 // 10MB

	multipartOverhead = 64 << 10
)

// Handler exposes upload sessions over HTTP.
type Handler struct {
	Sessions       *session.Store
	Presenter      *presenter.Presenter
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(sessions *session.Store, p *presenter.Presenter, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{Sessions: sessions, Presenter: p, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.GET("/sessions/:id", h.get)
	rg.DELETE("/sessions/:id", h.remove)
	rg.POST("/sessions/:id/file", h.selectFile)
	rg.POST("/sessions/:id/description", h.setDescription)
	rg.POST("/sessions/:id/submit", h.submit)
	rg.POST("/sessions/:id/back", h.back)
	rg.POST("/sessions/:id/reset", h.reset)
}

func (h *Handler) create(c *gin.Context) {
	sess := h.Sessions.Create()
	middleware.SetSessionID(c, sess.ID)
	respond.JSON(c, http.StatusCreated, h.render(sess))
}

func (h *Handler) get(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	respond.OK(c, h.render(sess))
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)
	if err := h.Sessions.Delete(id); err != nil {
		respond.Error(c, http.StatusNotFound, "session_not_found", "session not found", nil)
		return
	}
	respond.NoContent(c)
}

func (h *Handler) selectFile(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fileTooLarge(c)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", workflow.MessageMissingFile, nil)
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		h.fileTooLarge(c)
		return
	}
	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	pv := preview.Inspect(c.Request.Context(), content, name, fileHeader.Header.Get("Content-Type"))
	before := sess.Workflow.State()
	if err := sess.Workflow.SelectFile(analyzer.File{Name: name, MimeType: pv.MimeType, Content: content}); err != nil {
		h.workflowError(c, err)
		return
	}
	sess.SetPreview(&pv)
	if before == workflow.CollectingFile {
		if err := sess.Workflow.Advance(); err != nil {
			h.workflowError(c, err)
			return
		}
	}
	middleware.SetTransition(c, before.String(), sess.Workflow.State().String())
	respond.OK(c, h.render(sess))
}

func (h *Handler) setDescription(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobDescription == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}
	if err := sess.Workflow.SetDescription(*req.JobDescription); err != nil {
		h.workflowError(c, err)
		return
	}
	respond.OK(c, h.render(sess))
}

// submit answers 200 for analyses that reached the service, including
// failures: the error text travels on the snapshot like any other state.
func (h *Handler) submit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	before := sess.Workflow.State()
	err := sess.Workflow.Submit(c.Request.Context())
	var verr *workflow.ValidationError
	switch {
	case err == nil:
	case errors.Is(err, workflow.ErrSubmissionInFlight),
		errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrSuperseded),
		errors.As(err, &verr):
		h.workflowError(c, err)
		return
	}
	middleware.SetTransition(c, before.String(), sess.Workflow.State().String())
	respond.OK(c, h.render(sess))
}

func (h *Handler) back(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	before := sess.Workflow.State()
	if err := sess.Workflow.Back(); err != nil {
		h.workflowError(c, err)
		return
	}
	middleware.SetTransition(c, before.String(), sess.Workflow.State().String())
	respond.OK(c, h.render(sess))
}

func (h *Handler) reset(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	before := sess.Workflow.State()
	sess.Workflow.Reset()
	sess.SetPreview(nil)
	middleware.SetTransition(c, before.String(), sess.Workflow.State().String())
	respond.OK(c, h.render(sess))
}

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	id := c.Param("id")
	middleware.SetSessionID(c, id)
	sess, err := h.Sessions.Get(id)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "session_not_found", "session not found", nil)
		return nil, false
	}
	return sess, true
}

func (h *Handler) fileTooLarge(c *gin.Context) {
	respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the upload limit", gin.H{
		"maxBytes": h.MaxUploadBytes,
	})
}

func (h *Handler) workflowError(c *gin.Context, err error) {
	var verr *workflow.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", verr.Message, nil)
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		respond.Error(c, http.StatusConflict, "submission_in_flight", "An analysis is already in progress.", nil)
	case errors.Is(err, workflow.ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_transition", "That action is not available right now.", nil)
	case errors.Is(err, workflow.ErrSuperseded):
		respond.Error(c, http.StatusConflict, "superseded", "The session was reset before the analysis finished.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", analyzer.MessageServerError, nil)
	}
}
