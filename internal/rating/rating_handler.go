package rating

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	store *resource.Store[Rating]
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn:   "month",
		DefaultLimit: 200,
		Filters: map[string]string{
			"siteId": "site_id",
		},
	}
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{store: resource.NewStore[Rating](db, Descriptor())}
}

// Create: klien menilai site-nya sendiri, client_id dari identity.
func (h *Handler) Create(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	identity := middleware.IdentityFrom(c)
	row, err := req.toEntity(identity.ID)
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

// CreateForClient: ADMIN/CRO menilai atas nama klien tertentu.
func (h *Handler) CreateForClient(c *gin.Context) {
	var req AdminRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := req.RatingRequest.toEntity(req.ClientID)
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

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	rows, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[AdminRatingRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]Rating, 0, len(items))
	for _, item := range items {
		row, err := item.RatingRequest.toEntity(item.ClientID)
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
