package handler

import (
	"net/http"
	"time"

	"mindful/backend/internal/models"
	"mindful/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

// FriendRequestInput names the user to befriend.
type FriendRequestInput struct {
	RecipientID uint `json:"recipient_id" binding:"required" example:"2"`
}

// SendFriendRequestResponse is returned when a request is created.
type SendFriendRequestResponse struct {
	Message string `json:"message" example:"Friend request sent."`
	ID      uint   `json:"id" example:"1"`
	// ReverseRequestID is set when the recipient already has a pending
	// request to the caller. Both requests stay pending.
	ReverseRequestID *uint `json:"reverse_request_id,omitempty"`
}

// FriendRequestResponse is one request in a listing.
type FriendRequestResponse struct {
	ID        uint         `json:"id"`
	Sender    UserResponse `json:"sender"`
	Recipient UserResponse `json:"recipient"`
	Status    string       `json:"status" example:"pending"`
	CreatedAt time.Time    `json:"created_at"`
}

func newFriendRequestResponse(r models.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:        r.ID,
		Sender:    newUserResponse(r.Sender),
		Recipient: newUserResponse(r.Recipient),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// PaginatedFriendRequestResponse defines the structure for a paginated list of requests.
type PaginatedFriendRequestResponse struct {
	Data []FriendRequestResponse `json:"data"`
	Meta PaginationMeta          `json:"meta"`
}

// endregion

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Description  At most one request ever exists per ordered (sender, recipient) pair.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Recipient"
// @Success      201  {object}  SendFriendRequestResponse
// @Failure      400  {object}  MessageResponse "Friend request already sent."
// @Failure      401  {object}  map[string]string
// @Failure      404
// @Router       /friend-requests/ [post]
func (h *Handler) SendFriendRequest(c *gin.Context) {
	senderID, ok := callerID(c)
	if !ok {
		return
	}
	var input FriendRequestInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.Friends.Send(c.Request.Context(), senderID, input.RecipientID)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := SendFriendRequestResponse{Message: "Friend request sent.", ID: res.Request.ID}
	if res.ReversePending != nil {
		h.Log.Warn("friend request sent while reverse request is pending",
			zap.Uint("sender_id", senderID),
			zap.Uint("recipient_id", input.RecipientID),
			zap.Uint("reverse_request_id", res.ReversePending.ID),
		)
		resp.ReverseRequestID = &res.ReversePending.ID
	}
	c.JSON(http.StatusCreated, resp)
}

// RespondFriendRequest godoc
// @Summary      Accept or reject a friend request
// @Description  Only the recipient may respond. Accept adds the friendship both ways.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int     true  "Request ID"
// @Param        action  path  string  true  "accept or reject"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse "Invalid action."
// @Failure      404
// @Router       /friend-requests/{id}/{action}/ [post]
func (h *Handler) RespondFriendRequest(c *gin.Context) {
	recipientID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	action := service.Action(c.Param("action"))
	req, err := h.Friends.Respond(c.Request.Context(), id, recipientID, action)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend request " + string(req.Status) + "."})
}

// ListFriendRequests godoc
// @Summary      List the caller's friend requests
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        direction query     string  false  "incoming or outgoing"
// @Param        status    query     string  false  "pending, accepted or rejected"
// @Param        page      query     int     false  "Page number" default(1)
// @Param        limit     query     int     false  "Items per page" default(10)
// @Success      200       {object}  PaginatedFriendRequestResponse
// @Failure      400       {object}  FieldErrors
// @Router       /friend-requests/ [get]
func (h *Handler) ListFriendRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	query, err := h.Friends.RequestsQuery(c.Request.Context(), userID, service.RequestFilter{
		Direction: c.Query("direction"),
		Status:    models.FriendRequestStatus(c.Query("status")),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	page, limit := pageParams(c)
	result, err := Paginate[models.FriendRequest](query, page, limit, "Sender", "Recipient")
	if err != nil {
		h.fail(c, err)
		return
	}

	data := make([]FriendRequestResponse, 0, len(result.Data))
	for _, r := range result.Data {
		data = append(data, newFriendRequestResponse(r))
	}
	c.JSON(http.StatusOK, PaginatedFriendRequestResponse{Data: data, Meta: result.Meta})
}

// ListFriends godoc
// @Summary      List the caller's friends
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /friends/ [get]
func (h *Handler) ListFriends(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	h.listFriends(c, userID)
}

// ListUserFriends godoc
// @Summary      List a user's friends
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   UserResponse
// @Failure      404
// @Router       /users/{id}/friends/ [get]
func (h *Handler) ListUserFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.listFriends(c, id)
}

func (h *Handler) listFriends(c *gin.Context, userID uint) {
	friends, err := h.Friends.ListFriends(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(friends))
}

// RemoveFriend godoc
// @Summary      Remove a friend
// @Description  Ends the friendship for both users.
// @Tags         friendship
// @Security     BearerAuth
// @Param        id path int true "Friend's user ID"
// @Success      204
// @Failure      404
// @Router       /friends/{id}/ [delete]
func (h *Handler) RemoveFriend(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	friendID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Friends.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
