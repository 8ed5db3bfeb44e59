package handlers

import (
	"net/http"

	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postHandler      *PostHandler
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postHandler *PostHandler, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		postHandler:      postHandler,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the reverse-chronological page of posts authored by
// accounts the caller follows, enriched with counts and the caller's like
// state. An empty following set yields an empty page.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, limit := getPagination(c)

	followingIDs, err := h.followRepository.GetFollowingIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, total, err := h.postRepository.GetFeedPosts(followingIDs, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched, err := h.postHandler.enrichPosts(posts, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": enriched},
		"meta":    listMeta(page, limit, total),
	})
}
