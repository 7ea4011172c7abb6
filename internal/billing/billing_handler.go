package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SOA(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	out, err := h.service.SOA(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	rows, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Create(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, row)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[BillRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	count, err := h.service.BulkCreate(c.Request.Context(), items)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.Inserted(c, http.StatusCreated, count)
}
