package response

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

// Kontrak wire API ini: sukses mengembalikan entity/list/objek count apa
// adanya, gagal mengembalikan {error, message}.

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorBody{Error: code, Message: message})
}

// Problem memetakan error service ke body error via apperror.ToHTTP.
func Problem(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

// Inserted / Upserted adalah body sukses untuk operasi bulk.
func Inserted(c *gin.Context, status, count int) {
	c.JSON(status, gin.H{"inserted": count})
}

func Upserted(c *gin.Context, status, count int) {
	c.JSON(status, gin.H{"upserted": count})
}
