package payroll

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	store *resource.Store[SalaryDisbursement]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "month",
		Filters: map[string]string{
			"siteId": "site_id",
		},
	}
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: resource.NewStore[SalaryDisbursement](db, Descriptor())}
}

// Status membalas pencairan terbaru untuk site (dibatasi ke satu bulan
// kalau ?month= diisi), atau null.
func (h *Handler) Status(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" {
		response.Error(c, http.StatusBadRequest, "siteId_required", "siteId query parameter is required")
		return
	}

	equals := map[string]any{"site_id": siteID}
	if month := c.Query("month"); month != "" {
		normalized, err := NormalizeMonth(month)
		if err != nil {
			response.Problem(c, err)
			return
		}
		equals["month"] = normalized
	}

	row, err := h.store.Latest(c.Request.Context(), equals)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, row)
}

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	rows, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) Create(c *gin.Context) {
	var req DisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := req.toEntity()
	if err != nil {
		response.Problem(c, err)
		return
	}
	if err := h.store.Create(c.Request.Context(), row); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, row)
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[DisbursementRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]SalaryDisbursement, 0, len(items))
	for _, item := range items {
		row, err := item.toEntity()
		if err != nil {
			response.Problem(c, err)
			return
		}
		rows = append(rows, *row)
	}

	count, err := h.store.BulkCreate(c.Request.Context(), rows)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.Inserted(c, http.StatusCreated, count)
}
