package store

import (
	"errors"
	"testing"

	"hospital-portal-server/internal/models"
)

func TestHistoryDerivedFromAppointmentsAndNotes(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentStore(db, testLogger())
	notes := NewNoteStore(db, testLogger())
	archive := NewRecordArchive(db)

	in := validInput(patientActor)
	in.SpecialtyID = "cardio"
	in.DoctorID = "dr-johnson"
	appointment, err := appointments.Create(patientActor, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := notes.Create(doctorActor, CreateNoteInput{
		AppointmentID: appointment.ID,
		DoctorID:      doctorActor.DoctorID,
		Diagnosis:     "Hypertension",
		Treatment:     "Lisinopril 10mg daily",
		FollowUpDate:  "2024-09-01",
	}); err != nil {
		t.Fatalf("create note: %v", err)
	}
	if _, err := appointments.SetStatus(doctorActor, appointment.ID, models.StatusCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}

	records, err := archive.ListByPatient(patientActor.ID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.ID != appointment.ID {
		t.Error("expected record id to be the appointment id")
	}
	if record.Status != "completed" {
		t.Errorf("expected completed, got %s", record.Status)
	}
	if record.Type != RecordConsultation {
		t.Errorf("expected consultation, got %s", record.Type)
	}
	if record.Diagnosis != "Hypertension" || record.Treatment != "Lisinopril 10mg daily" {
		t.Error("expected diagnosis and treatment from the attached note")
	}
	if record.FollowUp == nil || *record.FollowUp != "2024-09-01" {
		t.Error("expected follow-up carried from the note")
	}
	if record.DoctorID != "dr-johnson" {
		t.Errorf("expected doctor dr-johnson, got %s", record.DoctorID)
	}
}

func TestHistoryStatusAndTypeMapping(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentStore(db, testLogger())
	archive := NewRecordArchive(db)

	// A package booking without notes reads as a pending diagnostic entry.
	in := validInput(patientActor)
	in.PackageID = "basic-checkup"
	appointment, err := appointments.Create(patientActor, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := appointments.SetStatus(receptionistActor, appointment.ID, models.StatusApproved, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	records, err := archive.ListByPatient(patientActor.ID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Type != RecordTest {
		t.Errorf("expected package booking to map to test, got %s", records[0].Type)
	}
	// approved reads as pending in the history view
	if records[0].Status != "pending" {
		t.Errorf("expected pending, got %s", records[0].Status)
	}
	if records[0].Diagnosis != "" {
		t.Errorf("expected empty diagnosis without notes, got %q", records[0].Diagnosis)
	}
}

func TestHistoryRecordAccessControl(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentStore(db, testLogger())
	archive := NewRecordArchive(db)

	appointment, err := appointments.Create(patientActor, validInput(patientActor))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := archive.GetByID(patientActor, appointment.ID); err != nil {
		t.Errorf("owner read: %v", err)
	}
	if _, err := archive.GetByID(otherPatientActor, appointment.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for foreign patient, got %v", err)
	}
	if _, err := archive.GetByID(doctorActor, appointment.ID); err != nil {
		t.Errorf("doctor read: %v", err)
	}
	if _, err := archive.GetByID(patientActor, "no-such-record"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHistoryEmptyForUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	archive := NewRecordArchive(db)

	records, err := archive.ListByPatient("nobody")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}
