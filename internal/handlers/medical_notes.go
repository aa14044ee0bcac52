package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/store"
	"hospital-portal-server/internal/utils"
)

// MedicalNoteHandler handles clinical note requests.
type MedicalNoteHandler struct {
	Notes *store.NoteStore
}

// NewMedicalNoteHandler creates a new MedicalNoteHandler.
func NewMedicalNoteHandler(notes *store.NoteStore) *MedicalNoteHandler {
	return &MedicalNoteHandler{Notes: notes}
}

// CreateNoteRequest represents the request body for recording a clinical note.
type CreateNoteRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required,uuid"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	Treatment     string `json:"treatment"`
	Notes         string `json:"notes"`
	FollowUpDate  string `json:"followUpDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateNote records a clinical note against an appointment. Doctor-only;
// the note is attributed to the doctor's catalog entry and is immutable once
// written.
func (h *MedicalNoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	note, err := h.Notes.Create(actor, store.CreateNoteInput{
		AppointmentID: req.AppointmentID,
		DoctorID:      actor.DoctorID,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
		FollowUpDate:  req.FollowUpDate,
	})
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Created(c, "Medical note created successfully", note)
}
