package handlers

import (
	"errors"
	"net/http"
	"strings"

	"guestevents/models"
	"guestevents/services/otp"
	"guestevents/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OTPHandler serves the mobile sign-in endpoints.
type OTPHandler struct {
	Service otp.OTPService
}

// NewOTPHandler creates an OTPHandler.
func NewOTPHandler(svc otp.OTPService) *OTPHandler {
	return &OTPHandler{Service: svc}
}

// SendOTPHandler issues a code to the given mobile number.
func (h *OTPHandler) SendOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid send OTP request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Mobile) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
		return
	}

	if err := h.Service.Send(c.Request.Context(), req.Mobile); err != nil {
		logger.Error("Failed to send OTP", zap.String("mobile", utils.MaskMobile(req.Mobile)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTPHandler checks a code and returns a signed token.
func (h *OTPHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid verify OTP request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Mobile) == "" || strings.TrimSpace(req.OTP) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mobile and Otp are required"})
		return
	}

	token, err := h.Service.Verify(c.Request.Context(), req.Mobile, req.OTP)
	switch {
	case errors.Is(err, otp.ErrInvalidOTP):
		logger.Warn("OTP verification failed", zap.String("mobile", utils.MaskMobile(req.Mobile)))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		return
	case err != nil:
		logger.Error("Failed to verify OTP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		return
	}
	c.JSON(http.StatusOK, models.VerifyOTPResponse{Message: "OTP verified successfully", Token: token})
}
