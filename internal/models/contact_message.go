package models

// ContactMessage is an inquiry submitted through the public contact form.
// Receptionists review the inbox and mark entries resolved.
type ContactMessage struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Subject  string `gorm:"size:255" json:"subject"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Resolved bool   `gorm:"default:false" json:"resolved"`
}
