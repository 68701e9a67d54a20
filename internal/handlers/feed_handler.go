package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dmtrv/blogfeed/internal/cache"
	"github.com/dmtrv/blogfeed/internal/feed"
	"github.com/dmtrv/blogfeed/internal/pagination"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the home and following feeds
type FeedHandler struct {
	composer *feed.Composer
	timeline *cache.TimelineCache
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(composer *feed.Composer, timeline *cache.TimelineCache) *FeedHandler {
	return &FeedHandler{
		composer: composer,
		timeline: timeline,
	}
}

// RegisterPublicRoutes registers feed routes that allow anonymous access
func (h *FeedHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/feed", h.GetHomeFeed)
}

// RegisterProtectedRoutes registers feed routes that require authentication
func (h *FeedHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/feed/following", h.GetFollowingFeed)
}

// GetHomeFeed returns the global timeline. The first page with default
// parameters is served from the timeline cache within its TTL; readers may
// see a snapshot up to TTL old, which is the intended tradeoff.
func (h *FeedHandler) GetHomeFeed(c echo.Context) error {
	page := pagination.ParsePage(c.QueryParam("page"))
	ctx := c.Request().Context()

	if page == 1 {
		if body, ok := h.timeline.Get(ctx); ok {
			return c.JSONBlob(http.StatusOK, body)
		}
	}

	feedPage, err := h.composer.Home(page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	body, err := json.Marshal(echo.Map{
		"success": true,
		"data":    echo.Map{"posts": feedPage.Items},
		"meta":    pageMeta(feedPage),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if page == 1 {
		h.timeline.Put(ctx, body)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// GetFollowingFeed returns posts authored by accounts the viewer follows.
// Never cached.
func (h *FeedHandler) GetFollowingFeed(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	if viewerID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page := pagination.ParsePage(c.QueryParam("page"))
	feedPage, err := h.composer.Following(viewerID, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": feedPage.Items},
		"meta":    pageMeta(feedPage),
	})
}
