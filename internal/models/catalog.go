package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reference catalog tables. These are read-only from the application's
// perspective: they are seeded at migration time and only ever queried by
// exact id or by specialty relation.

// Specialty is a medical department patients book against.
type Specialty struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

// Doctor is a catalog entry for a practicing doctor. Doctor user accounts
// map onto a catalog entry through User.DoctorID.
type Doctor struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	SpecialtyID string `gorm:"size:64;index" json:"specialtyId"`
	Image       string `gorm:"size:255" json:"image"`
}

// TimeSlot is a fixed, named time-of-day interval from a closed enumeration.
// Combined with a calendar date it forms a bookable unit.
type TimeSlot struct {
	ID       string `gorm:"primaryKey;size:16" json:"id"`
	Time     string `gorm:"size:16;not null" json:"time"`
	Position int    `gorm:"not null;default:0" json:"-"` // display order within the day
}

// MedicalPackage is a bundled checkup offering tied to a specialty.
type MedicalPackage struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	SpecialtyID string  `gorm:"size:64;index" json:"specialtyId"`
	Image       string  `gorm:"size:255" json:"image"`
}

// SeedCatalog upserts the reference catalog. Safe to run on every startup.
func SeedCatalog(db *gorm.DB) error {
	specialties := []Specialty{
		{ID: "gen-med", Name: "General Medicine"},
		{ID: "cardio", Name: "Cardiology"},
		{ID: "derm", Name: "Dermatology"},
		{ID: "ped", Name: "Pediatrics"},
		{ID: "dent", Name: "Dentistry"},
		{ID: "ortho", Name: "Orthopedics"},
		{ID: "neuro", Name: "Neurology"},
	}

	doctors := []Doctor{
		{ID: "dr-smith", Name: "Dr. Juan Perez", SpecialtyID: "gen-med"},
		{ID: "dr-johnson", Name: "Dr. Maria Gonzalez", SpecialtyID: "cardio"},
		{ID: "dr-patel", Name: "Dr. Carlos Rodriguez", SpecialtyID: "derm"},
		{ID: "dr-garcia", Name: "Dr. Ana Martinez", SpecialtyID: "ped"},
		{ID: "dr-chen", Name: "Dr. Luis Sanchez", SpecialtyID: "dent"},
		{ID: "dr-brown", Name: "Dr. Javier Lopez", SpecialtyID: "ortho"},
		{ID: "dr-kim", Name: "Dr. Sofia Ramirez", SpecialtyID: "neuro"},
	}

	timeSlots := []TimeSlot{
		{ID: "9am", Time: "9:00 AM", Position: 1},
		{ID: "10am", Time: "10:00 AM", Position: 2},
		{ID: "11am", Time: "11:00 AM", Position: 3},
		{ID: "1pm", Time: "1:00 PM", Position: 4},
		{ID: "2pm", Time: "2:00 PM", Position: 5},
		{ID: "3pm", Time: "3:00 PM", Position: 6},
		{ID: "4pm", Time: "4:00 PM", Position: 7},
	}

	packages := []MedicalPackage{
		{ID: "basic-checkup", Title: "Basic Health Checkup", Description: "Full physical exam, blood work and a consultation with a general practitioner.", Price: 150, SpecialtyID: "gen-med"},
		{ID: "heart-health", Title: "Heart Health Package", Description: "Complete cardiac evaluation including ECG, stress test and a cardiologist consultation.", Price: 350, SpecialtyID: "cardio"},
		{ID: "skin-care", Title: "Skin Care Package", Description: "Full skin examination, allergy testing and a personalized skin care plan.", Price: 200, SpecialtyID: "derm"},
		{ID: "child-wellness", Title: "Child Wellness Package", Description: "Complete pediatric checkup, vaccinations and growth assessment.", Price: 180, SpecialtyID: "ped"},
		{ID: "dental-care", Title: "Dental Care Package", Description: "Dental cleaning, X-rays and a full oral health evaluation.", Price: 220, SpecialtyID: "dent"},
		{ID: "joint-health", Title: "Joint Health Package", Description: "Joint mobility assessment, imaging and an orthopedic consultation.", Price: 280, SpecialtyID: "ortho"},
	}

	for _, batch := range []interface{}{&specialties, &doctors, &timeSlots, &packages} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(batch).Error; err != nil {
			return err
		}
	}
	return nil
}
