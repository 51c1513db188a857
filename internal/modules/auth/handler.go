package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/middleware"
	"github.com/mrigtrishna/core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
	secure bool // Secure cookie flag, off in development
}

func NewHandler(svc *Service, logger *zap.Logger, secure bool) *Handler {
	return &Handler{svc: svc, logger: logger, secure: secure}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth", h.auth)
}

// POST /auth with {action: send|verify|logout}
func (h *Handler) auth(c *gin.Context) {
	var dto AuthDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch dto.Action {
	case "send":
		h.send(c, dto)
	case "verify":
		h.verify(c, dto)
	case "logout":
		h.logout(c)
	default:
		response.BadRequest(c, "invalid action")
	}
}

func (h *Handler) send(c *gin.Context, dto AuthDTO) {
	err := h.svc.Send(c.Request.Context(), dto.Email)
	switch {
	case errors.Is(err, errUnauthorizedEmail):
		response.Forbidden(c, err.Error())
	case err != nil:
		h.logger.Error("send login code failed", zap.Error(err))
		response.InternalErrorMsg(c, "failed to send code")
	default:
		response.OKMessage(c, "code sent")
	}
}

func (h *Handler) verify(c *gin.Context, dto AuthDTO) {
	token, err := h.svc.Verify(c.Request.Context(), dto.Email, dto.Code)
	switch {
	case errors.Is(err, errInvalidCode), errors.Is(err, errCodeExpired):
		response.Unauthorized(c, err.Error())
	case err != nil:
		h.logger.Error("verify login code failed", zap.Error(err))
		response.InternalErrorMsg(c, "verification failed")
	default:
		c.SetCookie(middleware.SessionCookie, token, int(SessionTTL.Seconds()), "/", "", h.secure, true)
		response.OKMessage(c, "login successful")
	}
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	response.OKMessage(c, "logged out")
}
