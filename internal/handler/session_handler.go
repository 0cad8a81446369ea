package handler

import (
	"net/http"
	"time"

	"mindful/backend/internal/models"
	"mindful/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionInput is the body for creating or replacing a scheduled session.
type SessionInput struct {
	AudioTrack    *uint      `json:"audio_track" example:"1"`
	ScheduledTime *time.Time `json:"scheduled_time" binding:"required" example:"2030-01-01T07:30:00Z"`
	Completed     bool       `json:"completed"`
}

func (in SessionInput) toService() service.SessionInput {
	return service.SessionInput{
		AudioTrackID:  in.AudioTrack,
		ScheduledTime: *in.ScheduledTime,
		Completed:     in.Completed,
	}
}

// SessionResponse is the shape of a scheduled session.
type SessionResponse struct {
	ID            uint      `json:"id" example:"1"`
	User          uint      `json:"user" example:"1"`
	AudioTrack    *uint     `json:"audio_track" example:"1"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Completed     bool      `json:"completed"`
}

func newSessionResponse(s models.ScheduledSession) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		User:          s.UserID,
		AudioTrack:    s.AudioTrackID,
		ScheduledTime: s.ScheduledTime,
		Completed:     s.Completed,
	}
}

// ListSessions godoc
// @Summary      List the caller's scheduled sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /sessions/ [get]
func (h *Handler) ListSessions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	sessions, err := h.Sessions.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, newSessionResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSession godoc
// @Summary      Schedule a session
// @Description  The scheduled time must be in the future.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SessionInput true "Session"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  FieldErrors
// @Failure      401  {object}  map[string]string
// @Router       /sessions/ [post]
func (h *Handler) CreateSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input SessionInput
	if !bindJSON(c, &input) {
		return
	}
	session, err := h.Sessions.Create(c.Request.Context(), userID, input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionResponse(*session))
}

// GetSession godoc
// @Summary      Get a scheduled session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      404
// @Router       /sessions/{id}/ [get]
func (h *Handler) GetSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := h.Sessions.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(*session))
}

// UpdateSession godoc
// @Summary      Replace a scheduled session
// @Description  The only way to mark a session completed.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Session ID"
// @Param        input body      SessionInput  true  "Session"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  FieldErrors
// @Failure      404
// @Router       /sessions/{id}/ [put]
func (h *Handler) UpdateSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Sessions.Get(ctx, userID, id); err != nil {
		h.fail(c, err)
		return
	}

	var input SessionInput
	if !bindJSON(c, &input) {
		return
	}
	session, err := h.Sessions.Update(ctx, userID, id, input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(*session))
}

// DeleteSession godoc
// @Summary      Delete a scheduled session
// @Tags         sessions
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      204
// @Failure      404
// @Router       /sessions/{id}/ [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Sessions.Delete(c.Request.Context(), userID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
