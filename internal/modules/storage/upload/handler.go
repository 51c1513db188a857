package upload

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	uploader Uploader
	logger   *zap.Logger
}

func NewHandler(uploader Uploader, logger *zap.Logger) *Handler {
	return &Handler{uploader: uploader, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

// POST /upload: multipart field "file", bytes stored unmodified. Any
// client-side resizing or cropping happens before this call.
func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(payload)
	}

	key := buildObjectKey(time.Now(), fileHeader.Filename)
	url, err := h.uploader.Upload(c.Request.Context(), key, payload, contentType)
	if err != nil {
		h.logger.Error("object store upload failed", zap.Error(err), zap.String("key", key))
		response.InternalErrorMsg(c, "upload failed")
		return
	}

	response.OKRaw(c, gin.H{"url": url})
}
