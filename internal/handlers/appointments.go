package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/store"
	"hospital-portal-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments *store.AppointmentStore
	Notes        *store.NoteStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *store.AppointmentStore, notes *store.NoteStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Notes: notes}
}

// CreateAppointmentRequest represents the request body for booking an
// appointment. Patients book for themselves; receptionists pass the patient's
// user id to enter a walk-in.
type CreateAppointmentRequest struct {
	UserID      string `json:"userId"`
	PatientName string `json:"patientName" binding:"required"`
	PatientID   string `json:"patientId"`
	SpecialtyID string `json:"specialtyId" binding:"required"`
	DoctorID    string `json:"doctorId"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	TimeSlotID  string `json:"timeSlotId" binding:"required"`
	PackageID   string `json:"packageId"`
	Notes       string `json:"notes"`
}

// CreateAppointment books a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	input := store.CreateAppointmentInput{
		UserID:      req.UserID,
		PatientName: req.PatientName,
		PatientID:   req.PatientID,
		SpecialtyID: req.SpecialtyID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		TimeSlotID:  req.TimeSlotID,
		PackageID:   req.PackageID,
		Notes:       req.Notes,
	}
	// Patients always book under their own identity.
	if actor.Role == models.RolePatient {
		input.UserID = actor.ID
	}
	if input.PatientID == "" {
		input.PatientID = input.UserID
	}

	appointment, err := h.Appointments.Create(actor, input)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointmentsForUser fetches appointments for the logged-in user:
// patients see their own, doctors their assigned schedule, receptionists
// everything.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	var err error

	switch actor.Role {
	case models.RolePatient:
		appointments, err = h.Appointments.ListByPatient(actor.ID)
	case models.RoleDoctor:
		appointments, err = h.Appointments.ListByDoctor(actor.DoctorID)
	case models.RoleReceptionist:
		appointments, err = h.Appointments.ListAll()
	default:
		utils.Forbidden(c, "User role not permitted to view appointments. Role: "+string(actor.Role))
		return
	}

	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID fetches a single appointment. Accessible by the booking
// patient, the assigned doctor, or a receptionist.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Appointments.GetByID(c.Param("id"))
	if err != nil {
		renderStoreError(c, err)
		return
	}

	isPatientInvolved := actor.Role == models.RolePatient && appointment.UserID == actor.ID
	isDoctorInvolved := actor.Role == models.RoleDoctor &&
		(appointment.DoctorID == nil || *appointment.DoctorID == actor.DoctorID)

	if actor.Role != models.RoleReceptionist && !isPatientInvolved && !isDoctorInvolved {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the request body for updating an
// appointment's status.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=pending approved completed cancelled"`
	Notes  string                   `json:"notes"`
}

// UpdateAppointmentStatus transitions an appointment's status. The store
// enforces both the legal-transition rules and the per-role preconditions.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Appointments.SetStatus(actor, c.Param("id"), req.Status, req.Notes)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment hard-deletes an appointment record. Receptionist-only;
// patient withdrawal goes through the status endpoint as a cancellation.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Appointments.Delete(actor, c.Param("id")); err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// GetAppointmentNotes lists the clinical notes attached to an appointment,
// most recent first.
func (h *AppointmentHandler) GetAppointmentNotes(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Appointments.GetByID(c.Param("id"))
	if err != nil {
		renderStoreError(c, err)
		return
	}

	if actor.Role == models.RolePatient && appointment.UserID != actor.ID {
		utils.Forbidden(c, "You are not authorized to view these notes")
		return
	}

	notes, err := h.Notes.ListByAppointment(appointment.ID)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	utils.Success(c, "Medical notes fetched successfully", notes)
}
