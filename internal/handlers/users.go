package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// UserHandler handles staff-facing user lookups.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetPatients lists patient accounts for the receptionist walk-in form.
// Supports ?search= over name and email.
func (h *UserHandler) GetPatients(c *gin.Context) {
	query := h.DB.Where("role = ?", models.RolePatient).Order("name asc")
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var patients []models.User
	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, 0, len(patients))
	for i := range patients {
		sanitized = append(sanitized, patients[i].Sanitize())
	}
	utils.Success(c, "Patients fetched successfully", sanitized)
}

// GetPatientByID fetches one patient account.
func (h *UserHandler) GetPatientByID(c *gin.Context) {
	var patient models.User
	if err := h.DB.Where("role = ?", models.RolePatient).First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient.Sanitize())
}
