package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s AppointmentStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusCompleted || s == StatusCancelled
}

// Terminal reports whether no further transition is allowed from s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the s -> next transition is legal:
// pending -> approved, pending|approved -> completed, pending|approved -> cancelled.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case StatusApproved:
		return s == StatusPending
	case StatusCompleted, StatusCancelled:
		return s == StatusPending || s == StatusApproved
	default:
		return false
	}
}

// Appointment represents one booked (or requested) hospital visit. A bookable
// unit is the combination of a calendar date, a named time slot and a
// specialty; that triple must be unique among non-cancelled rows. Active is 1
// while the appointment is live and NULL once cancelled, so cancelled rows
// drop out of the composite unique index (MySQL unique indexes ignore NULLs).
type Appointment struct {
	BaseModel
	UserID      string            `gorm:"size:36;index" json:"userId"`
	PatientName string            `gorm:"size:255" json:"patientName"`
	PatientID   string            `gorm:"size:36" json:"patientId"`
	SpecialtyID string            `gorm:"size:64;uniqueIndex:idx_slot_booking,priority:3" json:"specialtyId"`
	DoctorID    *string           `gorm:"size:64;index" json:"doctorId"`
	Date        string            `gorm:"size:10;uniqueIndex:idx_slot_booking,priority:1" json:"date"` // YYYY-MM-DD, no time component
	TimeSlotID  string            `gorm:"size:16;uniqueIndex:idx_slot_booking,priority:2" json:"timeSlotId"`
	PackageID   *string           `gorm:"size:64" json:"packageId"`
	Status      AppointmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes"`
	CreatedBy   *string           `gorm:"size:36" json:"createdBy,omitempty"` // receptionist id for walk-ins
	Active      *bool             `gorm:"uniqueIndex:idx_slot_booking,priority:4" json:"-"`
}
