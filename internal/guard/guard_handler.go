package guard

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
	store    *resource.Store[Guard]
	resolver *resource.NameResolver
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "created_at",
		Filters:    map[string]string{"siteId": "site_id"},
	}
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		store:    resource.NewStore[Guard](db, Descriptor()),
		resolver: resource.NewNameResolver(db),
	}
}

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	guards, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}

	siteIDs := make([]uuid.UUID, 0, len(guards))
	for _, g := range guards {
		if g.SiteID != nil {
			siteIDs = append(siteIDs, *g.SiteID)
		}
	}
	siteNames, err := h.resolver.Names(c.Request.Context(), "sites", "name", siteIDs)
	if err != nil {
		response.Problem(c, err)
		return
	}

	out := make([]GuardResponse, len(guards))
	for i, g := range guards {
		out[i] = GuardResponse{Guard: g}
		if g.SiteID != nil {
			out[i].SiteName = resource.NameOf(siteNames, *g.SiteID, "Site")
		}
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Problem(c, apperror.InvalidField("Guard Id"))
		return
	}

	g, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, g)
}

func (h *Handler) Create(c *gin.Context) {
	var req GuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	g, err := req.toEntity()
	if err != nil {
		response.Problem(c, err)
		return
	}
	if err := h.store.Create(c.Request.Context(), g); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, g)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Problem(c, apperror.InvalidField("Guard Id"))
		return
	}

	var req UpdateGuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	g, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Phone != nil {
		g.Phone = *req.Phone
	}
	if req.SiteID != nil {
		siteID, err := uuid.Parse(*req.SiteID)
		if err != nil {
			response.Problem(c, apperror.InvalidField("Site Id"))
			return
		}
		g.SiteID = &siteID
	}

	if err := h.store.Save(c.Request.Context(), g); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, g)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Problem(c, apperror.InvalidField("Guard Id"))
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Guard deleted successfully"})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[GuardRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]Guard, 0, len(items))
	for _, item := range items {
		g, err := item.toEntity()
		if err != nil {
			response.Problem(c, err)
			return
		}
		rows = append(rows, *g)
	}

	count, err := h.store.BulkCreate(c.Request.Context(), rows)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.Inserted(c, http.StatusCreated, count)
}
