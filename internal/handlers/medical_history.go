package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/store"
	"hospital-portal-server/internal/utils"
)

// MedicalHistoryHandler serves the read-only medical history view, assembled
// live from appointments and clinical notes.
type MedicalHistoryHandler struct {
	Archive *store.RecordArchive
}

// NewMedicalHistoryHandler creates a new MedicalHistoryHandler.
func NewMedicalHistoryHandler(archive *store.RecordArchive) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{Archive: archive}
}

// GetHistory lists the authenticated patient's medical history, most recent
// first.
func (h *MedicalHistoryHandler) GetHistory(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	records, err := h.Archive.ListByPatient(actor.ID)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Medical history fetched successfully", records)
}

// GetRecord fetches a single medical history record by id.
func (h *MedicalHistoryHandler) GetRecord(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	record, err := h.Archive.GetByID(actor, c.Param("id"))
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Medical record fetched successfully", record)
}
