package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	cfg := &config.Config{
		Port:                      "0",
		Environment:               "test",
		JWTSecret:                 "test_jwt_secret",
		JWTRefreshSecret:          "test_refresh_secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
	}

	router := gin.New()
	SetupRoutes(router, db, cfg, zerolog.Nop())
	return router
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email, role, doctorID string) string {
	t.Helper()

	registration := map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret-pass-123",
	}
	if role != "" {
		registration["role"] = role
	}
	if doctorID != "" {
		registration["doctorId"] = doctorID
		registration["specialtyId"] = "cardio"
	}
	if w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", registration); w.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", email, w.Code, resp.Error)
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret-pass-123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", email, w.Code, resp.Error)
	}

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(resp.Data, &login); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if login.AccessToken == "" {
		t.Fatalf("empty access token for %s", email)
	}
	return login.AccessToken
}

// The full booking lifecycle: a patient books, the receptionist approves,
// the doctor records a note and completes the consultation.
func TestBookingLifecycle(t *testing.T) {
	router := newTestRouter(t)

	patientToken := registerAndLogin(t, router, "Juan Perez", "patient@hospital.test", "", "")
	doctorToken := registerAndLogin(t, router, "Dr. Maria Gonzalez", "doctor@hospital.test", "doctor", "dr-johnson")
	receptionToken := registerAndLogin(t, router, "Ana Martinez", "reception@hospital.test", "receptionist", "")

	// Patient books with no doctor specified.
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/appointments", patientToken, map[string]string{
		"patientName": "Juan Perez",
		"specialtyId": "cardio",
		"date":        "2024-08-01",
		"timeSlotId":  "10am",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: %d %s", w.Code, resp.Error)
	}
	var appointment models.Appointment
	if err := json.Unmarshal(resp.Data, &appointment); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appointment.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", appointment.Status)
	}
	if appointment.DoctorID != nil {
		t.Fatal("expected no assigned doctor")
	}

	// Same slot again is a conflict.
	if w, _ := doJSON(t, router, http.MethodPost, "/api/v1/appointments", patientToken, map[string]string{
		"patientName": "Juan Perez",
		"specialtyId": "cardio",
		"date":        "2024-08-01",
		"timeSlotId":  "10am",
	}); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slot, got %d", w.Code)
	}

	// Receptionist approves.
	statusPath := "/api/v1/appointments/" + appointment.ID + "/status"
	if w, resp := doJSON(t, router, http.MethodPatch, statusPath, receptionToken, map[string]string{
		"status": "approved",
	}); w.Code != http.StatusOK {
		t.Fatalf("approve: %d %s", w.Code, resp.Error)
	}

	// The staff triage list shows it approved.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/appointments", receptionToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list all: %d %s", w.Code, resp.Error)
	}
	var all []models.Appointment
	if err := json.Unmarshal(resp.Data, &all); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(all) != 1 || all[0].Status != models.StatusApproved {
		t.Fatalf("expected one approved appointment, got %+v", all)
	}

	// Doctor records the note, then completes the consultation.
	if w, resp := doJSON(t, router, http.MethodPost, "/api/v1/medical-notes", doctorToken, map[string]string{
		"appointmentId": appointment.ID,
		"diagnosis":     "Hypertension",
		"treatment":     "Lisinopril 10mg daily",
	}); w.Code != http.StatusCreated {
		t.Fatalf("create note: %d %s", w.Code, resp.Error)
	}
	if w, resp := doJSON(t, router, http.MethodPatch, statusPath, doctorToken, map[string]string{
		"status": "completed",
	}); w.Code != http.StatusOK {
		t.Fatalf("complete: %d %s", w.Code, resp.Error)
	}

	// Patient sees the note on the appointment.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/appointments/"+appointment.ID+"/notes", patientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list notes: %d %s", w.Code, resp.Error)
	}
	var notes []models.MedicalNote
	if err := json.Unmarshal(resp.Data, &notes); err != nil {
		t.Fatalf("decode notes: %v", err)
	}
	if len(notes) != 1 || notes[0].Diagnosis != "Hypertension" {
		t.Fatalf("expected one hypertension note, got %+v", notes)
	}

	// And the medical history reflects the completed visit.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/medical-history", patientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: %d %s", w.Code, resp.Error)
	}
	var records []struct {
		Status    string `json:"status"`
		Diagnosis string `json:"diagnosis"`
	}
	if err := json.Unmarshal(resp.Data, &records); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(records) != 1 || records[0].Status != "completed" || records[0].Diagnosis != "Hypertension" {
		t.Fatalf("expected completed record with diagnosis, got %+v", records)
	}
}

func TestAuthenticationRequired(t *testing.T) {
	router := newTestRouter(t)

	if w, _ := doJSON(t, router, http.MethodGet, "/api/v1/appointments", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
	if w, _ := doJSON(t, router, http.MethodGet, "/api/v1/appointments", "not-a-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with bad token, got %d", w.Code)
	}
}

func TestRoleGates(t *testing.T) {
	router := newTestRouter(t)

	patientToken := registerAndLogin(t, router, "Juan Perez", "patient@hospital.test", "", "")

	// Patients cannot write medical notes.
	if w, _ := doJSON(t, router, http.MethodPost, "/api/v1/medical-notes", patientToken, map[string]string{
		"appointmentId": "ignored",
		"diagnosis":     "self-diagnosis",
	}); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for patient note, got %d", w.Code)
	}

	// Nor browse the receptionist inbox.
	if w, _ := doJSON(t, router, http.MethodGet, "/api/v1/contact-messages", patientToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for patient inbox access, got %d", w.Code)
	}
}

func TestCatalogAndContactArePublic(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/catalog/specialties", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("specialties: %d %s", w.Code, resp.Error)
	}
	var specialties []models.Specialty
	if err := json.Unmarshal(resp.Data, &specialties); err != nil {
		t.Fatalf("decode specialties: %v", err)
	}
	if len(specialties) != 7 {
		t.Errorf("expected 7 specialties, got %d", len(specialties))
	}

	if w, resp := doJSON(t, router, http.MethodPost, "/api/v1/contact", "", map[string]string{
		"name":    "Juan Perez",
		"email":   "juan@example.test",
		"message": "What are your opening hours?",
	}); w.Code != http.StatusCreated {
		t.Fatalf("contact: %d %s", w.Code, resp.Error)
	}

	receptionToken := registerAndLogin(t, router, "Ana Martinez", "reception@hospital.test", "receptionist", "")
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/contact-messages", receptionToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("inbox: %d %s", w.Code, resp.Error)
	}
	var messages []models.ContactMessage
	if err := json.Unmarshal(resp.Data, &messages); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Resolved {
		t.Fatalf("expected one open message, got %+v", messages)
	}
}
