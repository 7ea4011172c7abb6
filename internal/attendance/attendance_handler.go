package attendance

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
	store    *resource.Store[Attendance]
	resolver *resource.NameResolver
}

func Descriptor() resource.Descriptor {
	return resource.Descriptor{
		DateColumn: "date",
		Filters: map[string]string{
			"siteId": "site_id",
			"status": "status",
		},
	}
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		store:    resource.NewStore[Attendance](db, Descriptor()),
		resolver: resource.NewNameResolver(db),
	}
}

func (h *Handler) List(c *gin.Context) {
	q := resource.ParseListQuery(c, Descriptor())
	rows, err := h.store.List(c.Request.Context(), q)
	if err != nil {
		response.Problem(c, err)
		return
	}

	out, err := h.enrich(c, rows)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// enrich memasang guard_name dan site_name. guard_id dicoba dulu ke tabel
// guards; sisanya di-fallback ke users (data lama menyimpan user id di
// kolom yang sama); yang tetap tak ketemu jadi "Unknown Guard".
func (h *Handler) enrich(c *gin.Context, rows []Attendance) ([]AttendanceResponse, error) {
	ctx := c.Request.Context()

	guardIDs := make([]uuid.UUID, 0, len(rows))
	siteIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.GuardID != nil {
			guardIDs = append(guardIDs, *r.GuardID)
		}
		siteIDs = append(siteIDs, r.SiteID)
	}

	guardNames, err := h.resolver.Names(ctx, "guards", "name", guardIDs)
	if err != nil {
		return nil, err
	}

	unresolved := make([]uuid.UUID, 0)
	for _, id := range guardIDs {
		if _, ok := guardNames[id]; !ok {
			unresolved = append(unresolved, id)
		}
	}
	if len(unresolved) > 0 {
		userNames, err := h.resolver.Names(ctx, "users", "name", unresolved)
		if err != nil {
			return nil, err
		}
		for id, name := range userNames {
			guardNames[id] = name
		}
	}

	siteNames, err := h.resolver.Names(ctx, "sites", "name", siteIDs)
	if err != nil {
		return nil, err
	}

	out := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		out[i] = AttendanceResponse{
			Attendance: r,
			SiteName:   resource.NameOf(siteNames, r.SiteID, "Site"),
		}
		if r.GuardID != nil {
			out[i].GuardName = resource.NameOf(guardNames, *r.GuardID, "Guard")
		}
	}
	return out, nil
}

func (h *Handler) Create(c *gin.Context) {
	var req AttendanceRequest
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
		response.Problem(c, apperror.InvalidField("Attendance Id"))
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	row, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	if req.GuardID != nil {
		guardID, err := uuid.Parse(*req.GuardID)
		if err != nil {
			response.Problem(c, apperror.InvalidField("Guard Id"))
			return
		}
		row.GuardID = &guardID
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.Problem(c, apperror.InvalidField("Date"))
			return
		}
		row.Date = date
	}
	if req.Status != nil {
		row.Status = *req.Status
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
		response.Problem(c, apperror.InvalidField("Attendance Id"))
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Attendance deleted successfully"})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	items, err := resource.BindBulk[AttendanceRequest](c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	rows := make([]Attendance, 0, len(items))
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
