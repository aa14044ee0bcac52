package store

import (
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// RecordType classifies a medical history entry.
type RecordType string

const (
	RecordConsultation    RecordType = "consultation"
	RecordTest            RecordType = "test"
	RecordProcedure       RecordType = "procedure"
	RecordHospitalization RecordType = "hospitalization"
)

// MedicalRecord is the denormalized read-only history view a patient sees.
// It is assembled live from the appointment and note stores rather than kept
// as its own table.
type MedicalRecord struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	Date        string     `json:"date"`
	SpecialtyID string     `json:"specialtyId"`
	DoctorID    string     `json:"doctorId"`
	Type        RecordType `json:"type"`
	Status      string     `json:"status"`
	Diagnosis   string     `json:"diagnosis"`
	Treatment   string     `json:"treatment"`
	Notes       string     `json:"notes"`
	FollowUp    *string    `json:"followUp,omitempty"`
}

// RecordArchive assembles the medical history view per patient.
type RecordArchive struct {
	db *gorm.DB
}

// NewRecordArchive creates a new RecordArchive.
func NewRecordArchive(db *gorm.DB) *RecordArchive {
	return &RecordArchive{db: db}
}

// ListByPatient returns the patient's history, most recent first. One record
// per appointment; diagnosis, treatment and follow-up come from the latest
// attached note.
func (a *RecordArchive) ListByPatient(userID string) ([]MedicalRecord, error) {
	var appointments []models.Appointment
	if err := a.db.Where("user_id = ?", userID).Order("date desc").Find(&appointments).Error; err != nil {
		return nil, storeErr("list appointments for history", err)
	}
	if len(appointments) == 0 {
		return []MedicalRecord{}, nil
	}

	ids := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		ids = append(ids, appointment.ID)
	}

	var notes []models.MedicalNote
	if err := a.db.Where("appointment_id IN ?", ids).Order("created_at desc").Find(&notes).Error; err != nil {
		return nil, storeErr("list notes for history", err)
	}
	latest := make(map[string]*models.MedicalNote, len(notes))
	for i := range notes {
		note := &notes[i]
		if _, ok := latest[note.AppointmentID]; !ok {
			// Notes are ordered newest first, so the first hit wins.
			latest[note.AppointmentID] = note
		}
	}

	records := make([]MedicalRecord, 0, len(appointments))
	for _, appointment := range appointments {
		records = append(records, buildRecord(appointment, latest[appointment.ID]))
	}
	return records, nil
}

// GetByID fetches one history record; record ids are appointment ids. Only
// the owning patient or staff may read it.
func (a *RecordArchive) GetByID(actor Actor, recordID string) (*MedicalRecord, error) {
	var appointment models.Appointment
	if err := a.db.First(&appointment, "id = ?", recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, storeErr("get appointment for history", err)
	}

	if actor.Role == models.RolePatient && appointment.UserID != actor.ID {
		return nil, ErrForbidden
	}

	var notes []models.MedicalNote
	if err := a.db.Where("appointment_id = ?", appointment.ID).Order("created_at desc").Limit(1).Find(&notes).Error; err != nil {
		return nil, storeErr("get note for history", err)
	}
	var note *models.MedicalNote
	if len(notes) > 0 {
		note = &notes[0]
	}

	record := buildRecord(appointment, note)
	return &record, nil
}

func buildRecord(appointment models.Appointment, note *models.MedicalNote) MedicalRecord {
	record := MedicalRecord{
		ID:          appointment.ID,
		PatientID:   appointment.UserID,
		Date:        appointment.Date,
		SpecialtyID: appointment.SpecialtyID,
		Type:        RecordConsultation,
		Status:      recordStatus(appointment.Status),
		Notes:       appointment.Notes,
	}
	if appointment.PackageID != nil {
		// Package bookings are diagnostic bundles rather than plain visits.
		record.Type = RecordTest
	}
	if appointment.DoctorID != nil {
		record.DoctorID = *appointment.DoctorID
	}
	if note != nil {
		record.Diagnosis = note.Diagnosis
		record.Treatment = note.Treatment
		if note.Notes != "" {
			record.Notes = note.Notes
		}
		record.FollowUp = note.FollowUpDate
		if record.DoctorID == "" {
			record.DoctorID = note.DoctorID
		}
	}
	return record
}

func recordStatus(status models.AppointmentStatus) string {
	switch status {
	case models.StatusCompleted:
		return "completed"
	case models.StatusCancelled:
		return "cancelled"
	default:
		// pending and approved both read as pending history entries
		return "pending"
	}
}
