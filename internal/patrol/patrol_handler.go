package patrol

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	store    *resource.Store[NightRound]
	resolver *resource.NameResolver
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
	return &Handler{
		store:    resource.NewStore[NightRound](db, Descriptor()),
		resolver: resource.NewNameResolver(db),
	}
}

// Latest membalas patroli malam terakhir untuk satu site, atau null.
func (h *Handler) Latest(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" {
		response.Error(c, http.StatusBadRequest, "siteId_required", "siteId query parameter is required")
		return
	}
	if _, err := uuid.Parse(siteID); err != nil {
		response.Problem(c, apperror.InvalidField("Site Id"))
		return
	}

	row, err := h.store.Latest(c.Request.Context(), map[string]any{"site_id": siteID})
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

	officerIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.OfficerID != nil {
			officerIDs = append(officerIDs, *r.OfficerID)
		}
	}
	names, err := h.resolver.Names(c.Request.Context(), "users", "name", officerIDs)
	if err != nil {
		response.Problem(c, err)
		return
	}

	out := make([]NightRoundResponse, len(rows))
	for i, r := range rows {
		out[i] = NightRoundResponse{NightRound: r}
		if r.OfficerID != nil {
			out[i].OfficerName = resource.NameOf(names, *r.OfficerID, "Officer")
		}
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Create(c *gin.Context) {
	var req NightRoundRequest
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
	items, err := resource.BindBulk[NightRoundRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]NightRound, 0, len(items))
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
