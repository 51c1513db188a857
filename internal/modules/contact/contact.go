package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/pkg/mail"
	"github.com/mrigtrishna/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Mailer forwards contact-form submissions.
type Mailer interface {
	SendContactInquiry(to string, data mail.ContactInquiryData) error
}

type InquiryDTO struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message"  binding:"required"`
}

type Handler struct {
	mailer  Mailer
	logger  *zap.Logger
	inboxTo string // the admin address submissions land in
}

func NewHandler(mailer Mailer, logger *zap.Logger, inboxTo string) *Handler {
	return &Handler{mailer: mailer, logger: logger, inboxTo: inboxTo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// POST /contact: synchronous relay, no retry, no queue.
func (h *Handler) submit(c *gin.Context) {
	var dto InquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.mailer.SendContactInquiry(h.inboxTo, mail.ContactInquiryData{
		Name:     dto.Name,
		Email:    dto.Email,
		Category: dto.Category,
		Message:  dto.Message,
	})
	if err != nil {
		h.logger.Error("contact inquiry failed", zap.Error(err), zap.String("from", dto.Email))
		response.InternalErrorMsg(c, "failed to send email")
		return
	}
	response.OKMessage(c, "email sent")
}
