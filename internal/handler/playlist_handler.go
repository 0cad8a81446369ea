package handler

import (
	"net/http"

	"mindful/backend/internal/models"
	"mindful/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type PlaylistInput struct {
	Name        string  `json:"name" binding:"required,max=100" example:"Evening wind-down"`
	Description *string `json:"description" example:"Tracks for before bed"`
}

type PlaylistItemInput struct {
	AudioTrackID uint `json:"audio_track_id" binding:"required" example:"1"`
}

type PlaylistItemResponse struct {
	ID         uint  `json:"id"`
	Position   int   `json:"position"`
	AudioTrack *uint `json:"audio_track"`
}

type PlaylistResponse struct {
	ID          uint                   `json:"id"`
	User        uint                   `json:"user"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Items       []PlaylistItemResponse `json:"items"`
}

func newPlaylistItemResponse(item models.PlaylistItem) PlaylistItemResponse {
	return PlaylistItemResponse{ID: item.ID, Position: item.Position, AudioTrack: item.AudioTrackID}
}

func newPlaylistResponse(p models.Playlist) PlaylistResponse {
	items := make([]PlaylistItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, newPlaylistItemResponse(item))
	}
	return PlaylistResponse{
		ID:          p.ID,
		User:        p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Items:       items,
	}
}

// endregion

// ListPlaylists godoc
// @Summary      List the caller's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlaylistResponse
// @Failure      401  {object}  map[string]string
// @Router       /playlists/ [get]
func (h *Handler) ListPlaylists(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	playlists, err := h.Playlists.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, newPlaylistResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PlaylistInput true "Playlist"
// @Success      201  {object}  PlaylistResponse
// @Failure      400  {object}  FieldErrors
// @Router       /playlists/ [post]
func (h *Handler) CreatePlaylist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input PlaylistInput
	if !bindJSON(c, &input) {
		return
	}
	playlist, err := h.Playlists.Create(c.Request.Context(), userID, service.PlaylistInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPlaylistResponse(*playlist))
}

// GetPlaylist godoc
// @Summary      Get a playlist with its items
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Playlist ID"
// @Success      200  {object}  PlaylistResponse
// @Failure      404
// @Router       /playlists/{id}/ [get]
func (h *Handler) GetPlaylist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	playlist, err := h.Playlists.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaylistResponse(*playlist))
}

// UpdatePlaylist godoc
// @Summary      Rename or describe a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Playlist ID"
// @Param        input body      PlaylistInput  true  "Playlist"
// @Success      200   {object}  PlaylistResponse
// @Failure      400   {object}  FieldErrors
// @Failure      404
// @Router       /playlists/{id}/ [put]
func (h *Handler) UpdatePlaylist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input PlaylistInput
	if !bindJSON(c, &input) {
		return
	}
	playlist, err := h.Playlists.Update(c.Request.Context(), userID, id, service.PlaylistInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaylistResponse(*playlist))
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Security     BearerAuth
// @Param        id path int true "Playlist ID"
// @Success      204
// @Failure      404
// @Router       /playlists/{id}/ [delete]
func (h *Handler) DeletePlaylist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Playlists.Delete(c.Request.Context(), userID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPlaylistItem godoc
// @Summary      Append a track to a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Playlist ID"
// @Param        input body      PlaylistItemInput  true  "Track"
// @Success      201   {object}  PlaylistItemResponse
// @Failure      400   {object}  FieldErrors
// @Failure      404
// @Router       /playlists/{id}/items/ [post]
func (h *Handler) AddPlaylistItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input PlaylistItemInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := h.Playlists.AddItem(c.Request.Context(), userID, id, input.AudioTrackID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPlaylistItemResponse(*item))
}

// RemovePlaylistItem godoc
// @Summary      Remove an item from a playlist
// @Tags         playlists
// @Security     BearerAuth
// @Param        id       path  int  true  "Playlist ID"
// @Param        item_id  path  int  true  "Item ID"
// @Success      204
// @Failure      404
// @Router       /playlists/{id}/items/{item_id}/ [delete]
func (h *Handler) RemovePlaylistItem(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if err := h.Playlists.RemoveItem(c.Request.Context(), userID, id, itemID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
