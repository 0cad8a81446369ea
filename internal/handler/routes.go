package handler

import (
	"mindful/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API endpoint on r. authLimiter, when not nil,
// guards the credential endpoints.
func (h *Handler) RegisterRoutes(r gin.IRouter, authn *auth.Authenticator, authLimiter gin.HandlerFunc) {
	requireUser := authn.Middleware()
	// Catalog routes are public; a caller who sends credentials is still identified.
	identify := authn.OptionalMiddleware()
	requireStaff := []gin.HandlerFunc{requireUser, auth.StaffMiddleware(h.Accounts)}

	r.GET("/ping", h.Ping)
	r.GET("/healthz", h.Healthz)

	// Auth routes
	authRoutes := r.Group("")
	if authLimiter != nil {
		authRoutes.Use(authLimiter)
	}
	{
		authRoutes.POST("/signup/", h.Signup)
		authRoutes.POST("/login/", h.Login)
		authRoutes.POST("/refresh-token/", h.RefreshToken)
		authRoutes.POST("/logout/", h.Logout)
	}

	// Catalog routes
	audio := r.Group("/audio-tracks", identify)
	{
		audio.GET("/", h.ListAudioTracks)
		audio.POST("/", h.CreateAudioTrack)
		audio.GET("/:id/", h.GetAudioTrack)
		audio.PUT("/:id/", h.UpdateAudioTrack)
		audio.DELETE("/:id/", h.DeleteAudioTrack)
		audio.POST("/:id/audio/", append(requireStaff, h.UploadAudio)...)
	}

	mood := r.Group("/mood-tracks", identify)
	{
		mood.GET("/", h.ListMoodTracks)
		mood.GET("/:id/", h.GetMoodTrack)
		mood.POST("/", append(requireStaff, h.CreateMoodTrack)...)
		mood.PUT("/:id/", append(requireStaff, h.UpdateMoodTrack)...)
		mood.DELETE("/:id/", append(requireStaff, h.DeleteMoodTrack)...)
	}

	// User-owned routes (protected)
	protected := r.Group("")
	protected.Use(requireUser)
	{
		protected.GET("/users/me/", h.GetMe)
		protected.GET("/users/:id/friends/", h.ListUserFriends)

		protected.GET("/sessions/", h.ListSessions)
		protected.POST("/sessions/", h.CreateSession)
		protected.GET("/sessions/:id/", h.GetSession)
		protected.PUT("/sessions/:id/", h.UpdateSession)
		protected.DELETE("/sessions/:id/", h.DeleteSession)

		protected.GET("/playlists/", h.ListPlaylists)
		protected.POST("/playlists/", h.CreatePlaylist)
		protected.GET("/playlists/:id/", h.GetPlaylist)
		protected.PUT("/playlists/:id/", h.UpdatePlaylist)
		protected.DELETE("/playlists/:id/", h.DeletePlaylist)
		protected.POST("/playlists/:id/items/", h.AddPlaylistItem)
		protected.DELETE("/playlists/:id/items/:item_id/", h.RemovePlaylistItem)

		// Friendship routes
		protected.GET("/friend-requests/", h.ListFriendRequests)
		protected.POST("/friend-requests/", h.SendFriendRequest)
		protected.POST("/friend-requests/:id/:action/", h.RespondFriendRequest)
		protected.GET("/friends/", h.ListFriends)
		protected.DELETE("/friends/:id/", h.RemoveFriend)
	}
}
