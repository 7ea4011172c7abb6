package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	identity := middleware.IdentityFrom(c)
	row, err := h.service.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, row)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Resolve(c *gin.Context) {
	row, err := h.service.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, row)
}
