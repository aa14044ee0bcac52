package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RolePatient || r == RoleDoctor || r == RoleReceptionist
}

// User represents an authenticated principal: a patient, a doctor or a
// receptionist. Doctors carry the mapping to their entry in the doctor
// catalog (DoctorID) plus their specialty; patients carry contact details.
type User struct {
	BaseModel
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Name        string `gorm:"size:255;not null" json:"name"`
	Role        Role   `gorm:"size:20;default:'patient'" json:"role"`
	Phone       string `gorm:"size:32" json:"phone,omitempty"`
	Address     string `gorm:"size:255" json:"address,omitempty"`
	SpecialtyID string `gorm:"size:64" json:"specialtyId,omitempty"` // doctors only
	DoctorID    string `gorm:"size:64" json:"doctorId,omitempty"`    // doctors only, catalog mapping

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	SpecialtyID string `json:"specialtyId,omitempty"`
	DoctorID    string `json:"doctorId,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Phone:       u.Phone,
		Address:     u.Address,
		SpecialtyID: u.SpecialtyID,
		DoctorID:    u.DoctorID,
	}
}
