package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/api/metrics"
	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"    validate:"required,email"`
	Message  string `json:"message"  validate:"required"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	err := h.service.Submit(c.Request().Context(), ports.ContactMessage{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Message:  req.Message,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ContactMessagesTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.ContactMessagesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
