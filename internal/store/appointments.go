package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// AppointmentStore owns appointment records: create, query, status
// transitions and the one-booking-per-slot invariant.
type AppointmentStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewAppointmentStore creates a new AppointmentStore.
func NewAppointmentStore(db *gorm.DB, log zerolog.Logger) *AppointmentStore {
	return &AppointmentStore{db: db, log: log.With().Str("store", "appointments").Logger()}
}

// CreateAppointmentInput carries the fields for a new appointment. Optional
// fields left empty are persisted as SQL NULL, never as "".
type CreateAppointmentInput struct {
	UserID      string
	PatientName string
	PatientID   string
	SpecialtyID string
	DoctorID    string // optional
	Date        string // YYYY-MM-DD
	TimeSlotID  string
	PackageID   string // optional
	Notes       string // optional
}

// ListByPatient returns all appointments booked under the given user,
// ascending by date. An empty result is not an error.
func (s *AppointmentStore) ListByPatient(userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Where("user_id = ?", userID).Order("date asc").Find(&appointments).Error; err != nil {
		return nil, storeErr("list appointments by patient", err)
	}
	return appointments, nil
}

// ListByDoctor returns all appointments assigned to the given catalog doctor,
// ascending by date. Completed and cancelled appointments are included; the
// doctor view does not hide them.
func (s *AppointmentStore) ListByDoctor(doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Where("doctor_id = ?", doctorID).Order("date asc").Find(&appointments).Error; err != nil {
		return nil, storeErr("list appointments by doctor", err)
	}
	return appointments, nil
}

// ListAll returns every appointment, ascending by date, for staff triage.
func (s *AppointmentStore) ListAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Order("date asc").Find(&appointments).Error; err != nil {
		return nil, storeErr("list all appointments", err)
	}
	return appointments, nil
}

// GetByID fetches a single appointment.
func (s *AppointmentStore) GetByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get appointment", err)
	}
	return &appointment, nil
}

// Create validates and persists a new appointment. Patients book for
// themselves and start pending; receptionists enter walk-ins, which start
// approved and record the receptionist in CreatedBy. The slot-conflict check
// runs inside a transaction and the table's composite unique index backs it
// up, so two concurrent bookings for the same slot cannot both commit.
func (s *AppointmentStore) Create(actor Actor, in CreateAppointmentInput) (*models.Appointment, error) {
	if in.UserID == "" {
		return nil, required("user_id")
	}
	if in.PatientName == "" {
		return nil, required("patient_name")
	}
	if in.SpecialtyID == "" {
		return nil, required("specialty_id")
	}
	if in.Date == "" {
		return nil, required("date")
	}
	if in.TimeSlotID == "" {
		return nil, required("time_slot_id")
	}

	switch actor.Role {
	case models.RolePatient:
		if in.UserID != actor.ID {
			return nil, ErrForbidden
		}
	case models.RoleReceptionist:
		// walk-in, allowed for any patient
	default:
		return nil, ErrForbidden
	}

	// Referenced catalog entries must exist.
	if err := s.checkCatalogRefs(in); err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		UserID:      in.UserID,
		PatientName: in.PatientName,
		PatientID:   in.PatientID,
		SpecialtyID: in.SpecialtyID,
		DoctorID:    nullable(in.DoctorID),
		Date:        in.Date,
		TimeSlotID:  in.TimeSlotID,
		PackageID:   nullable(in.PackageID),
		Status:      models.StatusPending,
		Notes:       in.Notes,
		Active:      active(),
	}
	if actor.Role == models.RoleReceptionist {
		appointment.Status = models.StatusApproved
		appointment.CreatedBy = nullable(actor.ID)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("date = ? AND time_slot_id = ? AND specialty_id = ? AND status <> ?",
				in.Date, in.TimeSlotID, in.SpecialtyID, models.StatusCancelled).
			Count(&count).Error; err != nil {
			return storeErr("check slot availability", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		if err := tx.Create(&appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race to a concurrent booking; the unique index caught it.
				return ErrSlotTaken
			}
			return storeErr("create appointment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("appointment", appointment.ID).
		Str("date", appointment.Date).
		Str("slot", appointment.TimeSlotID).
		Str("specialty", appointment.SpecialtyID).
		Str("status", string(appointment.Status)).
		Msg("appointment created")
	return &appointment, nil
}

// SetStatus transitions an appointment's status, optionally overwriting its
// notes. Legal transitions only: pending -> approved, pending|approved ->
// completed, pending|approved -> cancelled. Role rules: receptionists approve
// or cancel, doctors complete their own appointments, patients cancel their
// own. Cancellation keeps the row for history but releases the slot.
func (s *AppointmentStore) SetStatus(actor Actor, id string, status models.AppointmentStatus, notes string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + string(status)}
	}

	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, &ValidationError{
			Field:  "status",
			Reason: "cannot transition from " + string(appointment.Status) + " to " + string(status),
		}
	}

	if !s.canSetStatus(actor, appointment, status) {
		return nil, ErrForbidden
	}

	appointment.Status = status
	if status == models.StatusCancelled {
		// Release the slot so it can be rebooked.
		appointment.Active = nil
	}
	if notes != "" {
		appointment.Notes = notes
	}

	if err := s.db.Save(appointment).Error; err != nil {
		return nil, storeErr("update appointment status", err)
	}

	s.log.Info().
		Str("appointment", appointment.ID).
		Str("status", string(status)).
		Str("actor", actor.ID).
		Msg("appointment status updated")
	return appointment, nil
}

func (s *AppointmentStore) canSetStatus(actor Actor, appointment *models.Appointment, status models.AppointmentStatus) bool {
	switch actor.Role {
	case models.RoleReceptionist:
		return status == models.StatusApproved || status == models.StatusCancelled
	case models.RoleDoctor:
		if status != models.StatusCompleted {
			return false
		}
		// Appointments with no assigned doctor may be attended by any doctor.
		return appointment.DoctorID == nil || *appointment.DoctorID == actor.DoctorID
	case models.RolePatient:
		return status == models.StatusCancelled && appointment.UserID == actor.ID
	}
	return false
}

// Delete hard-deletes an appointment. This is a receptionist-only data
// retention operation; user-facing withdrawal goes through SetStatus with
// cancelled. Deleting a missing id fails with ErrNotFound.
func (s *AppointmentStore) Delete(actor Actor, id string) error {
	if actor.Role != models.RoleReceptionist {
		return ErrForbidden
	}

	result := s.db.Unscoped().Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return storeErr("delete appointment", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.log.Info().Str("appointment", id).Str("actor", actor.ID).Msg("appointment deleted")
	return nil
}

func (s *AppointmentStore) checkCatalogRefs(in CreateAppointmentInput) error {
	var count int64
	if err := s.db.Model(&models.Specialty{}).Where("id = ?", in.SpecialtyID).Count(&count).Error; err != nil {
		return storeErr("check specialty", err)
	}
	if count == 0 {
		return &ValidationError{Field: "specialty_id", Reason: "unknown specialty " + in.SpecialtyID}
	}
	if err := s.db.Model(&models.TimeSlot{}).Where("id = ?", in.TimeSlotID).Count(&count).Error; err != nil {
		return storeErr("check time slot", err)
	}
	if count == 0 {
		return &ValidationError{Field: "time_slot_id", Reason: "unknown time slot " + in.TimeSlotID}
	}
	if in.DoctorID != "" {
		if err := s.db.Model(&models.Doctor{}).Where("id = ?", in.DoctorID).Count(&count).Error; err != nil {
			return storeErr("check doctor", err)
		}
		if count == 0 {
			return &ValidationError{Field: "doctor_id", Reason: "unknown doctor " + in.DoctorID}
		}
	}
	return nil
}

// nullable maps "" to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func active() *bool {
	v := true
	return &v
}
