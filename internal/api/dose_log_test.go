package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
)

func postJSON(t *testing.T, path string, body string) *http.Request {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func TestLogDoseCreatesLogRow(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")
	medicine := createTestMedicine(t, database, user.ID, "Aspirin", "100mg",
		models.Schedule{TimeToTake: "08:00", OnMonday: true},
	)

	var schedule models.Schedule
	if err := database.Where("medicine_id = ?", medicine.ID).First(&schedule).Error; err != nil {
		t.Fatalf("load schedule: %v", err)
	}

	payload := fmt.Sprintf(`{"schedule_id":%d,"status":"Taken"}`, schedule.ID)
	request := postJSON(t, "/log-dose", payload)
	request.Header.Set("Cookie", authCookieForUser(t, handler, user))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("log dose request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var reply map[string]string
	if err := json.NewDecoder(response.Body).Decode(&reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply["status"] != "success" || reply["message"] != "Log updated successfully" {
		t.Fatalf("unexpected reply: %v", reply)
	}

	var log models.MedicationLog
	if err := database.Where("schedule_id = ?", schedule.ID).First(&log).Error; err != nil {
		t.Fatalf("expected log row: %v", err)
	}
	if log.Status != models.StatusTaken {
		t.Fatalf("expected status Taken, got %q", log.Status)
	}
	if log.DateTaken.IsZero() {
		t.Fatal("expected DateTaken to be stamped")
	}
}

func TestLogDoseAllowsDuplicateEntries(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")
	medicine := createTestMedicine(t, database, user.ID, "Aspirin", "100mg",
		models.Schedule{TimeToTake: "08:00", OnMonday: true},
	)
	var schedule models.Schedule
	if err := database.Where("medicine_id = ?", medicine.ID).First(&schedule).Error; err != nil {
		t.Fatalf("load schedule: %v", err)
	}

	for _, status := range []string{models.StatusTaken, models.StatusTaken, models.StatusMissed} {
		payload := fmt.Sprintf(`{"schedule_id":%d,"status":%q}`, schedule.ID, status)
		request := postJSON(t, "/log-dose", payload)
		request.Header.Set("Cookie", authCookieForUser(t, handler, user))
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("log dose request failed: %v", err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", response.StatusCode)
		}
	}

	var count int64
	if err := database.Model(&models.MedicationLog{}).Where("schedule_id = ?", schedule.ID).Count(&count).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 log rows, got %d", count)
	}
}

func TestLogDoseRejectsForeignSchedule(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	owner := createTestUser(t, database, "+15551234567")
	intruder := createTestUser(t, database, "+15559876543")
	medicine := createTestMedicine(t, database, owner.ID, "Aspirin", "100mg",
		models.Schedule{TimeToTake: "08:00", OnMonday: true},
	)
	var schedule models.Schedule
	if err := database.Where("medicine_id = ?", medicine.ID).First(&schedule).Error; err != nil {
		t.Fatalf("load schedule: %v", err)
	}

	payload := fmt.Sprintf(`{"schedule_id":%d,"status":"Taken"}`, schedule.ID)
	request := postJSON(t, "/log-dose", payload)
	request.Header.Set("Cookie", authCookieForUser(t, handler, intruder))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("log dose request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
	var reply map[string]string
	if err := json.NewDecoder(response.Body).Decode(&reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply["status"] != "error" || reply["message"] != "Invalid schedule" {
		t.Fatalf("unexpected reply: %v", reply)
	}

	var count int64
	if err := database.Model(&models.MedicationLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no log rows, got %d", count)
	}
}

func TestLogDoseRejectsUnknownSchedule(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")

	request := postJSON(t, "/log-dose", `{"schedule_id":9999,"status":"Taken"}`)
	request.Header.Set("Cookie", authCookieForUser(t, handler, user))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("log dose request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
}

func TestLogDoseRejectsMalformedBody(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")

	request := postJSON(t, "/log-dose", `{"schedule_id":`)
	request.Header.Set("Cookie", authCookieForUser(t, handler, user))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("log dose request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
