package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-commander/internal/command"
	"voice-commander/pkg/response"
)

// Process godoc
// @Summary     Process a voice or text command
// @Description Transcribes audio if needed, classifies intent, and routes the command to the best-suited LLM backend. Always returns a well-formed envelope; failures are reported in its error field.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Command input (textInput or audioBase64 required)"
// @Success     200 {object} command.Envelope
// @Failure     400 {object} response.Resp "Bad Request - neither textInput nor audioBase64 given"
// @Router      /api/v1/voice [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	env := h.uc.Route(ctx, req.toInput())

	h.l.Infof(ctx, "command processed: intent=%s backend=%s took=%dms",
		env.Intent, env.BackendUsed, env.ProcessingTimeMs)

	// The envelope is the client contract; it goes out unwrapped.
	c.JSON(http.StatusOK, env)
}

// Status godoc
// @Summary     Voice endpoint status
// @Description Reports which backends are configured and whether the service is ready (the classifier is the minimum requirement).
// @Tags        Command
// @Produce     json
// @Success     200 {object} response.Resp{data=statusResp}
// @Router      /api/v1/voice [GET]
func (h *handler) Status(c *gin.Context) {
	configured := map[string]bool{
		string(command.BackendClassifier): true, // the service refuses to start without it
		string(command.BackendCode):       h.backends.Available(command.BackendCode),
		string(command.BackendResearch):   h.backends.Available(command.BackendResearch),
		string(command.BackendCreative):   h.backends.Available(command.BackendCreative),
	}

	response.OK(c, statusResp{
		Status:     "ok",
		Endpoint:   "/api/v1/voice",
		Configured: configured,
		Ready:      configured[string(command.BackendClassifier)],
	})
}

// History godoc
// @Summary     Recent commands
// @Description Returns recent routing calls, newest first. In-memory and bounded; restarting the service clears it.
// @Tags        Command
// @Produce     json
// @Param       limit query int false "Max entries (default 20, max 100)"
// @Success     200 {object} response.Resp{data=historyResp}
// @Router      /api/v1/history [GET]
func (h *handler) History(c *gin.Context) {
	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newHistoryResp(h.history.Recent(req.limit())))
}
