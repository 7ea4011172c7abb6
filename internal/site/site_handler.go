package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	service  Service
	resolver *resource.NameResolver
}

func NewHandler(service Service, resolver *resource.NameResolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	sites, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}

	// Enrichment client_id → client_name dari tabel users
	clientIDs := make([]uuid.UUID, 0, len(sites))
	for _, s := range sites {
		if s.ClientID != nil {
			clientIDs = append(clientIDs, *s.ClientID)
		}
	}
	names, err := h.resolver.Names(c.Request.Context(), "users", "name", clientIDs)
	if err != nil {
		response.Problem(c, err)
		return
	}

	out := make([]SiteResponse, len(sites))
	for i, s := range sites {
		out[i] = SiteResponse{Site: s}
		if s.ClientID != nil {
			out[i].ClientName = resource.NameOf(names, *s.ClientID, "Client")
		}
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, s)
}

func (h *Handler) Create(c *gin.Context) {
	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	s, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, s)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	s, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, s)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Site deleted successfully"})
}

func (h *Handler) BulkUpsert(c *gin.Context) {
	items, err := resource.BindBulk[SiteRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	count, err := h.service.BulkUpsert(c.Request.Context(), items)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.Upserted(c, http.StatusCreated, count)
}
