package store

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// newTestDB opens an isolated in-memory sqlite database, migrated and seeded
// with the reference catalog. Each test gets its own database; the shared
// cache keeps it alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

var (
	patientActor      = Actor{ID: "patient-1", Role: models.RolePatient}
	otherPatientActor = Actor{ID: "patient-2", Role: models.RolePatient}
	receptionistActor = Actor{ID: "receptionist-1", Role: models.RoleReceptionist}
	doctorActor       = Actor{ID: "doctor-user-1", Role: models.RoleDoctor, DoctorID: "dr-johnson"}
)

func validInput(actor Actor) CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:      actor.ID,
		PatientName: "Juan Perez",
		PatientID:   actor.ID,
		SpecialtyID: "gen-med",
		Date:        "2024-06-01",
		TimeSlotID:  "9am",
	}
}
