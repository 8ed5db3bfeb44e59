package handlers

import (
	"net/http"
	"strconv"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/Musabek03/Instagram-clone/internal/notify"
	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	notifier         *notify.Notifier
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifier *notify.Notifier) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		notifier:         notifier,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser follows a user. Following an account twice is a no-op, not an
// error; following yourself is rejected.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if currentUserID == uint(targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, err := h.followRepository.CreateFollow(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"status": "already_following"}})
	}

	h.notifier.Followed(currentUserID, uint(targetID))

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"status": "following"}})
}

// UnfollowUser unfollows a user. Removing an absent edge reports
// not_following without error, and emits no notification either way.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	removed, err := h.followRepository.DeleteFollow(currentUserID, uint(targetID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "unfollowed"
	if !removed {
		status = "not_following"
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"status": status}})
}

// GetFollowers returns a paginated listing of a user's followers
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit := getPagination(c)

	users, total, err := h.followRepository.GetFollowers(uint(targetID), (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": toCompactList(users)},
		"meta":    listMeta(page, limit, total),
	})
}

// GetFollowing returns a paginated listing of accounts a user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit := getPagination(c)

	users, total, err := h.followRepository.GetFollowing(uint(targetID), (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": toCompactList(users)},
		"meta":    listMeta(page, limit, total),
	})
}

func toCompactList(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, len(users))
	for i, u := range users {
		compact[i] = u.ToCompact()
	}
	return compact
}
