package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// ContactHandler handles the public contact form and the receptionist inbox.
type ContactHandler struct {
	DB *gorm.DB
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{DB: db}
}

// ContactRequest represents the request body for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage stores a contact form submission. Public, no authentication.
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.DB.Create(&message).Error; err != nil {
		utils.InternalServerError(c, "Failed to store message: "+err.Error())
		return
	}

	utils.Created(c, "Message received. We will get back to you shortly.", message)
}

// GetMessages lists contact messages for the receptionist inbox, newest
// first. Pass ?resolved=false to see only open ones.
func (h *ContactHandler) GetMessages(c *gin.Context) {
	query := h.DB.Order("created_at desc")
	if resolved := c.Query("resolved"); resolved != "" {
		query = query.Where("resolved = ?", resolved == "true")
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch messages: "+err.Error())
		return
	}

	utils.Success(c, "Messages fetched successfully", messages)
}

// ResolveMessage marks a contact message as handled.
func (h *ContactHandler) ResolveMessage(c *gin.Context) {
	var message models.ContactMessage
	if err := h.DB.First(&message, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Message not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	message.Resolved = true
	if err := h.DB.Save(&message).Error; err != nil {
		utils.InternalServerError(c, "Failed to update message: "+err.Error())
		return
	}

	utils.Success(c, "Message marked as resolved", message)
}
