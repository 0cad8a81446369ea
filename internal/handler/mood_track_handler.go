package handler

import (
	"net/http"

	"mindful/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newMoodTrackResponse(t models.MoodTrack) TrackResponse {
	return TrackResponse{ID: t.ID, Title: t.Title, Description: t.Description, Audio: t.Audio}
}

// ListMoodTracks godoc
// @Summary      List mood tracks
// @Tags         mood-tracks
// @Produce      json
// @Success      200  {array}  TrackResponse
// @Router       /mood-tracks/ [get]
func (h *Handler) ListMoodTracks(c *gin.Context) {
	tracks, err := h.Catalog.ListMoodTracks(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, newMoodTrackResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// GetMoodTrack godoc
// @Summary      Get a mood track
// @Tags         mood-tracks
// @Produce      json
// @Param        id   path      int  true  "Mood track ID"
// @Success      200  {object}  TrackResponse
// @Failure      404
// @Router       /mood-tracks/{id}/ [get]
func (h *Handler) GetMoodTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	track, err := h.Catalog.GetMoodTrack(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newMoodTrackResponse(*track))
}

// CreateMoodTrack godoc
// @Summary      Create a mood track
// @Description  Titles are unique.
// @Tags         mood-tracks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TrackInput true "Mood track"
// @Success      201  {object}  TrackResponse
// @Failure      400  {object}  FieldErrors
// @Failure      403  {object}  map[string]string
// @Router       /mood-tracks/ [post]
func (h *Handler) CreateMoodTrack(c *gin.Context) {
	var input TrackInput
	if !bindJSON(c, &input) {
		return
	}
	track, err := h.Catalog.CreateMoodTrack(c.Request.Context(), input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "mood track created", zap.Uint("track_id", track.ID))
	c.JSON(http.StatusCreated, newMoodTrackResponse(*track))
}

// UpdateMoodTrack godoc
// @Summary      Replace a mood track
// @Tags         mood-tracks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int         true  "Mood track ID"
// @Param        input body      TrackInput  true  "Mood track"
// @Success      200   {object}  TrackResponse
// @Failure      400   {object}  FieldErrors
// @Failure      403   {object}  map[string]string
// @Failure      404
// @Router       /mood-tracks/{id}/ [put]
func (h *Handler) UpdateMoodTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input TrackInput
	if !bindJSON(c, &input) {
		return
	}
	track, err := h.Catalog.UpdateMoodTrack(c.Request.Context(), id, input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "mood track updated", zap.Uint("track_id", id))
	c.JSON(http.StatusOK, newMoodTrackResponse(*track))
}

// DeleteMoodTrack godoc
// @Summary      Delete a mood track
// @Tags         mood-tracks
// @Security     BearerAuth
// @Param        id path int true "Mood track ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404
// @Router       /mood-tracks/{id}/ [delete]
func (h *Handler) DeleteMoodTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteMoodTrack(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "mood track deleted", zap.Uint("track_id", id))
	c.Status(http.StatusNoContent)
}
