package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// NoteStore appends clinical notes to appointments. Notes are immutable once
// written: there is deliberately no update or delete operation here.
type NoteStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewNoteStore creates a new NoteStore.
func NewNoteStore(db *gorm.DB, log zerolog.Logger) *NoteStore {
	return &NoteStore{db: db, log: log.With().Str("store", "medical_notes").Logger()}
}

// CreateNoteInput carries the fields for a new medical note.
type CreateNoteInput struct {
	AppointmentID string
	DoctorID      string
	Diagnosis     string
	Treatment     string
	Notes         string
	FollowUpDate  string // optional, YYYY-MM-DD
}

// Create persists a clinical note against an existing appointment. Doctors
// only; the diagnosis is mandatory.
func (s *NoteStore) Create(actor Actor, in CreateNoteInput) (*models.MedicalNote, error) {
	if actor.Role != models.RoleDoctor {
		return nil, ErrForbidden
	}
	if in.AppointmentID == "" {
		return nil, required("appointment_id")
	}
	if in.DoctorID == "" {
		return nil, required("doctor_id")
	}
	if in.Diagnosis == "" {
		return nil, required("diagnosis")
	}

	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", in.AppointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("load appointment for note", err)
	}

	note := models.MedicalNote{
		AppointmentID: in.AppointmentID,
		DoctorID:      in.DoctorID,
		Diagnosis:     in.Diagnosis,
		Treatment:     in.Treatment,
		Notes:         in.Notes,
		FollowUpDate:  nullable(in.FollowUpDate),
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, storeErr("create medical note", err)
	}

	s.log.Info().
		Str("note", note.ID).
		Str("appointment", note.AppointmentID).
		Str("doctor", note.DoctorID).
		Msg("medical note created")
	return &note, nil
}

// ListByAppointment returns the notes attached to an appointment, most recent
// first.
func (s *NoteStore) ListByAppointment(appointmentID string) ([]models.MedicalNote, error) {
	var notes []models.MedicalNote
	if err := s.db.Where("appointment_id = ?", appointmentID).Order("created_at desc").Find(&notes).Error; err != nil {
		return nil, storeErr("list medical notes", err)
	}
	return notes, nil
}
