package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Summary membalas dashboard satu site. Tanpa siteId tetap 200: client
// lama menampilkan pesan "no site assigned", bukan error page.
func (h *Handler) Summary(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" || siteID == "your-site-id" {
		response.JSON(c, http.StatusOK, gin.H{
			"error":   "no_site_assigned",
			"message": "No site assigned to your account.",
		})
		return
	}

	out, err := h.service.Summary(c.Request.Context(), siteID, c.Query("from"), c.Query("to"))
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}
