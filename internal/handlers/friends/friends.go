package friends

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splittr/splittr/internal/domain"
	"github.com/splittr/splittr/internal/dto"
	friendservice "github.com/splittr/splittr/internal/service/friendservice"
	"github.com/splittr/splittr/pkg/auth"
	"github.com/splittr/splittr/pkg/utils"
)

type Service interface {
	SendRequest(ctx context.Context, senderID, receiverID int) (*domain.FriendRequest, error)
	AcceptRequest(ctx context.Context, receiverID, requestID int) (*domain.Friendship, error)
	DeclineRequest(ctx context.Context, receiverID, requestID int) error
	ListFriends(ctx context.Context, userID int) ([]domain.User, error)
	ListIncomingRequests(ctx context.Context, userID int) ([]domain.IncomingRequest, error)
	SearchUsers(ctx context.Context, userID int, query string) ([]domain.User, error)
}

type FriendHandler struct {
	friendService Service
}

func New(friendService Service) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// SearchUsers godoc
//
//	@Summary		Search users
//	@Description	Find users by handle or name, excluding the caller, existing friends and anyone with a pending request.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q	query		string	true	"Search query, two characters minimum"
//	@Success		200	{array}		dto.UserSearchResultDTO	"Matching users"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/search [get]
func (h *FriendHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	users, err := h.friendService.SearchUsers(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserSearchResultDTO, len(users))
	for i, u := range users {
		response[i] = dto.UserSearchResultDTO{
			ID:     u.ID,
			Name:   u.Name,
			Handle: u.Handle,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListFriends godoc
//
//	@Summary		List friends
//	@Description	List all confirmed friends of the authenticated user.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FriendDTO	"Friends"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/friends [get]
func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	friends, err := h.friendService.ListFriends(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FriendDTO, len(friends))
	for i, f := range friends {
		response[i] = dto.FriendDTO{
			ID:     f.ID,
			Name:   f.Name,
			Handle: f.Handle,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListRequests godoc
//
//	@Summary		List incoming friend requests
//	@Description	List pending friend requests addressed to the authenticated user.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.IncomingRequestDTO	"Pending requests"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/friends/requests [get]
func (h *FriendHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.friendService.ListIncomingRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.IncomingRequestDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.IncomingRequestDTO{
			ID: req.ID,
			Sender: dto.FriendDTO{
				ID:     req.Sender.ID,
				Name:   req.Sender.Name,
				Handle: req.Sender.Handle,
			},
			CreatedAt: req.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SendRequest godoc
//
//	@Summary		Send a friend request
//	@Description	Create a pending friend request addressed to another user.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int				true	"Receiver user ID"
//	@Success		200		{object}	utils.Response	"Request sent"
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Already friends or request pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests/{userID} [post]
func (h *FriendHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	receiverID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	_, err = h.friendService.SendRequest(r.Context(), userID, receiverID)
	if err != nil {
		switch {
		case errors.Is(err, friendservice.ErrSelfRequest):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, friendservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, friendservice.ErrAlreadyFriends),
			errors.Is(err, friendservice.ErrRequestPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friend request sent"})
}

// AcceptRequest godoc
//
//	@Summary		Accept a friend request
//	@Description	Accept a pending friend request addressed to the authenticated user.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		int				true	"Friend request ID"
//	@Success		200			{object}	utils.Response	"Request accepted"
//	@Failure		400			{object}	utils.Response	"Invalid request ID"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Request addressed to another user"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests/{requestID}/accept [post]
func (h *FriendHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	_, err = h.friendService.AcceptRequest(r.Context(), userID, requestID)
	if err != nil {
		h.respondRequestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friend request accepted"})
}

// DeclineRequest godoc
//
//	@Summary		Decline a friend request
//	@Description	Decline a pending friend request addressed to the authenticated user.
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		int				true	"Friend request ID"
//	@Success		200			{object}	utils.Response	"Request declined"
//	@Failure		400			{object}	utils.Response	"Invalid request ID"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Request addressed to another user"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests/{requestID}/decline [post]
func (h *FriendHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := h.friendService.DeclineRequest(r.Context(), userID, requestID); err != nil {
		h.respondRequestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friend request declined"})
}

func (h *FriendHandler) respondRequestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, friendservice.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, friendservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
