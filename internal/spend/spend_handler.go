package spend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	store *resource.Store[Spend]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "date",
		Filters: map[string]string{
			"siteId": "site_id",
		},
	}
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: resource.NewStore[Spend](db, Descriptor())}
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
	var req SpendRequest
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

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Problem(c, apperror.InvalidField("Spend Id"))
		return
	}

	var req UpdateSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	if req.Amount != nil {
		row.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.Problem(c, apperror.InvalidField("Date"))
			return
		}
		row.Date = date
	}
	if req.Description != nil {
		row.Description = *req.Description
	}

	if err := h.store.Save(c.Request.Context(), row); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Problem(c, apperror.InvalidField("Spend Id"))
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Spend deleted successfully"})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[SpendRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]Spend, 0, len(items))
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
