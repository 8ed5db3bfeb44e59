package handlers

import (
	"net/http"
	"strconv"

	"github.com/Musabek03/Instagram-clone/internal/notify"
	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var likeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "like_toggles_total",
	Help: "Like toggle calls by resulting state",
}, []string{"status"})

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	notifier       *notify.Notifier
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, notifier *notify.Notifier) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		notifier:       notifier,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/likes", h.GetLikers)
}

// ToggleLike is the sole like mutation entry point: it flips the caller's
// like state on the post and reports the new state with the updated count.
// A like-add on someone else's post emits at most one like notification;
// unliking never removes it.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked, err := h.likeRepository.ToggleLike(currentUserID, post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked {
		h.notifier.LikeAdded(currentUserID, post)
	}

	count, err := h.likeRepository.GetLikesCountByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "unliked"
	if liked {
		status = "liked"
	}
	likeToggles.WithLabelValues(status).Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"status":      status,
		"likes_count": count,
	})
}

// GetLikers retrieves a paginated listing of users who liked a post
func (h *LikeHandler) GetLikers(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, limit := getPagination(c)

	users, total, err := h.likeRepository.GetLikersByPostID(uint(postID), (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": toCompactList(users)},
		"meta":    listMeta(page, limit, total),
	})
}
