package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetMe(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Problem(c, err)
		return
	}
	// Selalu sukses, ada atau tidaknya akun tidak boleh kelihatan
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Problem(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		response.Problem(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
