package handlers

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmtrv/blogfeed/pkg/storage"
	"github.com/labstack/echo/v4"
)

// UploadHandler accepts image uploads and hands back opaque references
type UploadHandler struct {
	images storage.ImageStore
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(images storage.ImageStore) *UploadHandler {
	return &UploadHandler{images: images}
}

// RegisterPublicRoutes registers upload routes that allow anonymous access
func (h *UploadHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/uploads/:reference", h.GetImage)
}

// RegisterProtectedRoutes registers upload routes that require authentication
func (h *UploadHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/uploads", h.UploadImage)
}

// UploadImage stores the "image" form file and returns its reference. Posts
// carry the reference only; resolving it back to bytes is the storage
// collaborator's job.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unreadable image file")
	}
	defer src.Close()

	reference, err := h.images.Save(fileHeader.Filename, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"reference": reference}})
}

// GetImage resolves an opaque reference back to the stored bytes
func (h *UploadHandler) GetImage(c echo.Context) error {
	reference := c.Param("reference")
	src, err := h.images.Open(reference)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	contentType := mime.TypeByExtension(filepath.Ext(reference))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, src)
}
