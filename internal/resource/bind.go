package resource

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
)

// BindBulk menerima body bulk dalam dua bentuk yang sama-sama dipakai
// client lama: array telanjang atau {"items": [...]}.
// ShouldBindBodyWith dipakai supaya body bisa dibaca dua kali.
func BindBulk[T any](c *gin.Context) ([]T, error) {
	var direct []T
	if err := c.ShouldBindBodyWith(&direct, binding.JSON); err == nil {
		if len(direct) == 0 {
			return nil, apperror.New(apperror.CodeInvalidInput, "no_items", 400)
		}
		return direct, nil
	}

	var wrapped struct {
		Items []T `json:"items"`
	}
	if err := c.ShouldBindBodyWith(&wrapped, binding.JSON); err != nil {
		return nil, apperror.MapValidationError(err)
	}
	if len(wrapped.Items) == 0 {
		return nil, apperror.New(apperror.CodeInvalidInput, "no_items", 400)
	}
	return wrapped.Items, nil
}
