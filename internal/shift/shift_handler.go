package shift

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

// LatestDayBreakdown: agregasi guard per tipe shift untuk tanggal terakhir.
func (h *Handler) LatestDayBreakdown(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" {
		response.Error(c, http.StatusBadRequest, "siteId_required", "siteId query parameter is required")
		return
	}

	out, err := h.service.LatestDayBreakdown(c.Request.Context(), siteID)
	if err != nil {
		response.Problem(c, err)
		return
	}
	if out == nil {
		out = []ShiftTypeCount{}
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) LatestDayTotal(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" {
		response.Error(c, http.StatusBadRequest, "siteId_required", "siteId query parameter is required")
		return
	}

	total, err := h.service.LatestDayTotal(c.Request.Context(), siteID)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"shiftWiseCount": total})
}

func (h *Handler) ListAll(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	rows, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Create(c *gin.Context) {
	var req ShiftRequest
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

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[ShiftRequest](c)
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
