package handler

import (
	"net/http"

	"mindful/backend/internal/media"
	"mindful/backend/internal/models"
	"mindful/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

// TrackInput is the body for creating or replacing a track.
type TrackInput struct {
	Title       string `json:"title" binding:"required,max=30" example:"Morning rain"`
	Description string `json:"description" binding:"required" example:"Ten minutes of soft rain."`
	Audio       string `json:"audio" binding:"required,max=255" example:"video/upload/v1/rain.mp3"`
}

func (in TrackInput) toService() service.TrackInput {
	return service.TrackInput{Title: in.Title, Description: in.Description, Audio: in.Audio}
}

// TrackResponse is the shape of audio and mood tracks.
type TrackResponse struct {
	ID          uint   `json:"id" example:"1"`
	Title       string `json:"title" example:"Morning rain"`
	Description string `json:"description" example:"Ten minutes of soft rain."`
	Audio       string `json:"audio" example:"video/upload/v1/rain.mp3"`
}

func newAudioTrackResponse(t models.AudioTrack) TrackResponse {
	return TrackResponse{ID: t.ID, Title: t.Title, Description: t.Description, Audio: t.Audio}
}

// endregion

// ListAudioTracks godoc
// @Summary      List audio tracks
// @Description  Lists every track with its audio reference expanded to a full URL.
// @Tags         audio-tracks
// @Produce      json
// @Success      200  {array}   TrackResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /audio-tracks/ [get]
func (h *Handler) ListAudioTracks(c *gin.Context) {
	tracks, err := h.Catalog.ListAudioTracks(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		resp := newAudioTrackResponse(t)
		resp.Audio = media.Expand(h.MediaBaseURL, t.Audio)
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// CreateAudioTrack godoc
// @Summary      Create an audio track
// @Tags         audio-tracks
// @Accept       json
// @Produce      json
// @Param        input body TrackInput true "Track"
// @Success      201  {object}  TrackResponse
// @Failure      400  {object}  FieldErrors
// @Router       /audio-tracks/ [post]
func (h *Handler) CreateAudioTrack(c *gin.Context) {
	var input TrackInput
	if !bindJSON(c, &input) {
		return
	}
	track, err := h.Catalog.CreateAudioTrack(c.Request.Context(), input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "audio track created", zap.Uint("track_id", track.ID))
	c.JSON(http.StatusCreated, newAudioTrackResponse(*track))
}

// GetAudioTrack godoc
// @Summary      Get an audio track
// @Tags         audio-tracks
// @Produce      json
// @Param        id   path      int  true  "Track ID"
// @Success      200  {object}  TrackResponse
// @Failure      404
// @Router       /audio-tracks/{id}/ [get]
func (h *Handler) GetAudioTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	track, err := h.Catalog.GetAudioTrack(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newAudioTrackResponse(*track))
}

// UpdateAudioTrack godoc
// @Summary      Replace an audio track
// @Tags         audio-tracks
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Track ID"
// @Param        input body      TrackInput  true  "Track"
// @Success      200   {object}  TrackResponse
// @Failure      400   {object}  FieldErrors
// @Failure      404
// @Router       /audio-tracks/{id}/ [put]
func (h *Handler) UpdateAudioTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Catalog.GetAudioTrack(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	var input TrackInput
	if !bindJSON(c, &input) {
		return
	}
	track, err := h.Catalog.UpdateAudioTrack(ctx, id, input.toService())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "audio track updated", zap.Uint("track_id", id))
	c.JSON(http.StatusOK, newAudioTrackResponse(*track))
}

// DeleteAudioTrack godoc
// @Summary      Delete an audio track
// @Description  Sessions and playlist items that used the track keep a null reference.
// @Tags         audio-tracks
// @Param        id path int true "Track ID"
// @Success      204
// @Failure      404
// @Router       /audio-tracks/{id}/ [delete]
func (h *Handler) DeleteAudioTrack(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteAudioTrack(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "audio track deleted", zap.Uint("track_id", id))
	c.Status(http.StatusNoContent)
}

// UploadAudio godoc
// @Summary      Upload a track's audio file
// @Description  Stores the file in the object store and points the track at it.
// @Tags         audio-tracks
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int   true  "Track ID"
// @Param        file  formData  file  true  "Audio file"
// @Success      200   {object}  TrackResponse
// @Failure      400   {object}  FieldErrors
// @Failure      403   {object}  map[string]string
// @Failure      404
// @Failure      503   {object}  ErrorResponse
// @Router       /audio-tracks/{id}/audio/ [post]
func (h *Handler) UploadAudio(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Object storage is not configured"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Catalog.GetAudioTrack(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, FieldErrors{"file": {"No file was submitted."}})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref, err := h.Uploader.Upload(ctx, media.ObjectKey("audio", fh.Filename), f, fh.Size, contentType)
	if err != nil {
		h.fail(c, err)
		return
	}

	track, err := h.Catalog.SetAudio(ctx, id, ref)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(c, "audio uploaded", zap.Uint("track_id", id), zap.String("ref", ref), zap.Int64("size", fh.Size))
	c.JSON(http.StatusOK, newAudioTrackResponse(*track))
}
