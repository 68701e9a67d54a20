package handlers

import (
	"errors"
	"net/http"

	"github.com/dmtrv/blogfeed/internal/feed"
	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/dmtrv/blogfeed/internal/pagination"
	"github.com/dmtrv/blogfeed/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GroupHandler handles HTTP requests related to groups
type GroupHandler struct {
	groupRepository repositories.GroupRepository
	composer        *feed.Composer
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository, composer *feed.Composer) *GroupHandler {
	return &GroupHandler{
		groupRepository: groupRepo,
		composer:        composer,
	}
}

// RegisterPublicRoutes registers group routes that allow anonymous access
func (h *GroupHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/groups", h.GetGroups)
	g.GET("/groups/:slug", h.GetGroup)
	g.GET("/groups/:slug/posts", h.GetGroupPosts)
}

// RegisterProtectedRoutes registers group routes that require authentication
func (h *GroupHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/groups", h.CreateGroup)
	g.DELETE("/groups/:slug", h.DeleteGroup)
}

// CreateGroup creates a new group
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group := &models.Group{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.groupRepository.CreateGroup(group); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"group": group}})
}

// GetGroups lists all groups
func (h *GroupHandler) GetGroups(c echo.Context) error {
	groups, err := h.groupRepository.GetAllGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"groups": groups}})
}

// GetGroup returns a single group by slug
func (h *GroupHandler) GetGroup(c echo.Context) error {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"group": group}})
}

// GetGroupPosts returns the paginated feed of a group's posts
func (h *GroupHandler) GetGroupPosts(c echo.Context) error {
	page := pagination.ParsePage(c.QueryParam("page"))
	group, feedPage, err := h.composer.Group(c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"group": group, "posts": feedPage.Items},
		"meta":    pageMeta(feedPage),
	})
}

// DeleteGroup deletes a group. Its posts survive with the group reference
// cleared.
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.groupRepository.DeleteGroup(group.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
