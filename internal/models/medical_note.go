package models

// MedicalNote is a clinical note a doctor attaches to an appointment when
// attending the patient. Notes are append-only: the application exposes no
// update or delete path, and many notes may attach to one appointment.
type MedicalNote struct {
	BaseModel
	AppointmentID string  `gorm:"size:36;index;not null" json:"appointmentId"`
	DoctorID      string  `gorm:"size:64;not null" json:"doctorId"`
	Diagnosis     string  `gorm:"type:text;not null" json:"diagnosis"`
	Treatment     string  `gorm:"type:text" json:"treatment"`
	Notes         string  `gorm:"type:text" json:"notes"`
	FollowUpDate  *string `gorm:"size:10" json:"followUpDate,omitempty"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
