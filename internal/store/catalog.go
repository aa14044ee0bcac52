package store

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// Catalog is the read path over the reference tables. Lookups are exact-id
// and case-sensitive and never fail: a missing id yields ok=false and a
// filter yields an empty slice. Reference data absence is not exceptional,
// so database errors are logged and reported as not-found rather than
// propagated.
type Catalog struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewCatalog creates a new Catalog.
func NewCatalog(db *gorm.DB, log zerolog.Logger) *Catalog {
	return &Catalog{db: db, log: log.With().Str("store", "catalog").Logger()}
}

// SpecialtyByID returns the specialty with the given id.
func (c *Catalog) SpecialtyByID(id string) (models.Specialty, bool) {
	var specialty models.Specialty
	if err := c.db.First(&specialty, "id = ?", id).Error; err != nil {
		c.logMiss("specialty", id, err)
		return models.Specialty{}, false
	}
	return specialty, true
}

// DoctorByID returns the catalog doctor with the given id.
func (c *Catalog) DoctorByID(id string) (models.Doctor, bool) {
	var doctor models.Doctor
	if err := c.db.First(&doctor, "id = ?", id).Error; err != nil {
		c.logMiss("doctor", id, err)
		return models.Doctor{}, false
	}
	return doctor, true
}

// DoctorsBySpecialty returns the doctors practicing the given specialty.
func (c *Catalog) DoctorsBySpecialty(specialtyID string) []models.Doctor {
	var doctors []models.Doctor
	if err := c.db.Where("specialty_id = ?", specialtyID).Find(&doctors).Error; err != nil {
		c.logMiss("doctors by specialty", specialtyID, err)
		return []models.Doctor{}
	}
	return doctors
}

// TimeSlotByID returns the time slot with the given id.
func (c *Catalog) TimeSlotByID(id string) (models.TimeSlot, bool) {
	var slot models.TimeSlot
	if err := c.db.First(&slot, "id = ?", id).Error; err != nil {
		c.logMiss("time slot", id, err)
		return models.TimeSlot{}, false
	}
	return slot, true
}

// PackageByID returns the medical package with the given id.
func (c *Catalog) PackageByID(id string) (models.MedicalPackage, bool) {
	var pkg models.MedicalPackage
	if err := c.db.First(&pkg, "id = ?", id).Error; err != nil {
		c.logMiss("package", id, err)
		return models.MedicalPackage{}, false
	}
	return pkg, true
}

// PackagesBySpecialty returns the packages offered for the given specialty.
func (c *Catalog) PackagesBySpecialty(specialtyID string) []models.MedicalPackage {
	var packages []models.MedicalPackage
	if err := c.db.Where("specialty_id = ?", specialtyID).Find(&packages).Error; err != nil {
		c.logMiss("packages by specialty", specialtyID, err)
		return []models.MedicalPackage{}
	}
	return packages
}

// Specialties returns every specialty.
func (c *Catalog) Specialties() []models.Specialty {
	var specialties []models.Specialty
	if err := c.db.Order("name asc").Find(&specialties).Error; err != nil {
		c.logMiss("specialties", "", err)
		return []models.Specialty{}
	}
	return specialties
}

// Doctors returns every catalog doctor.
func (c *Catalog) Doctors() []models.Doctor {
	var doctors []models.Doctor
	if err := c.db.Order("name asc").Find(&doctors).Error; err != nil {
		c.logMiss("doctors", "", err)
		return []models.Doctor{}
	}
	return doctors
}

// TimeSlots returns the slot enumeration in time-of-day order.
func (c *Catalog) TimeSlots() []models.TimeSlot {
	var slots []models.TimeSlot
	if err := c.db.Order("position asc").Find(&slots).Error; err != nil {
		c.logMiss("time slots", "", err)
		return []models.TimeSlot{}
	}
	return slots
}

// Packages returns every medical package.
func (c *Catalog) Packages() []models.MedicalPackage {
	var packages []models.MedicalPackage
	if err := c.db.Order("title asc").Find(&packages).Error; err != nil {
		c.logMiss("packages", "", err)
		return []models.MedicalPackage{}
	}
	return packages
}

func (c *Catalog) logMiss(kind, id string, err error) {
	if err == gorm.ErrRecordNotFound {
		return
	}
	c.log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("catalog lookup failed")
}
