package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
)

// scheduleForWeekday returns a schedule active only on the given weekday.
func scheduleForWeekday(timeOfDay string, weekday time.Weekday) models.Schedule {
	schedule := models.Schedule{TimeToTake: timeOfDay}
	switch weekday {
	case time.Monday:
		schedule.OnMonday = true
	case time.Tuesday:
		schedule.OnTuesday = true
	case time.Wednesday:
		schedule.OnWednesday = true
	case time.Thursday:
		schedule.OnThursday = true
	case time.Friday:
		schedule.OnFriday = true
	case time.Saturday:
		schedule.OnSaturday = true
	case time.Sunday:
		schedule.OnSunday = true
	}
	return schedule
}

func getDueSchedules(t *testing.T, app *fiber.App, cookie string) []map[string]any {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/api/schedules", nil)
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("due schedules request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var due []map[string]any
	if err := json.NewDecoder(response.Body).Decode(&due); err != nil {
		t.Fatalf("decode due schedules: %v", err)
	}
	return due
}

func TestDueSchedulesFiltersByTodayWeekday(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")
	other := createTestUser(t, database, "+15559876543")

	today := time.Now().UTC().Weekday()
	tomorrow := time.Weekday((int(today) + 1) % 7)

	createTestMedicine(t, database, user.ID, "Aspirin", "100mg",
		scheduleForWeekday("08:00", today),
	)
	createTestMedicine(t, database, user.ID, "Ibuprofen", "200mg",
		scheduleForWeekday("12:00", tomorrow),
	)
	createTestMedicine(t, database, other.ID, "Paracetamol", "500mg",
		scheduleForWeekday("08:00", today),
	)

	due := getDueSchedules(t, app, authCookieForUser(t, handler, user))
	if len(due) != 1 {
		t.Fatalf("expected exactly one due schedule, got %d: %v", len(due), due)
	}
	entry := due[0]
	if entry["medicine_name"] != "Aspirin" {
		t.Fatalf("expected Aspirin due today, got %v", entry["medicine_name"])
	}
	if entry["dosage"] != "100mg" {
		t.Fatalf("expected dosage 100mg, got %v", entry["dosage"])
	}
	if entry["time"] != "08:00" {
		t.Fatalf("expected time 08:00, got %v", entry["time"])
	}
	if _, ok := entry["schedule_id"]; !ok {
		t.Fatal("expected schedule_id in response")
	}
}

func TestDueSchedulesOrdersByTime(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")

	today := time.Now().UTC().Weekday()
	createTestMedicine(t, database, user.ID, "Evening Pill", "10mg",
		scheduleForWeekday("21:00", today),
	)
	createTestMedicine(t, database, user.ID, "Morning Pill", "10mg",
		scheduleForWeekday("07:30", today),
	)

	due := getDueSchedules(t, app, authCookieForUser(t, handler, user))
	if len(due) != 2 {
		t.Fatalf("expected two due schedules, got %d", len(due))
	}
	if due[0]["time"] != "07:30" || due[1]["time"] != "21:00" {
		t.Fatalf("expected schedules ordered by time of day, got %v then %v", due[0]["time"], due[1]["time"])
	}
}

func TestDueSchedulesEmptyForUserWithNoMedicines(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")

	due := getDueSchedules(t, app, authCookieForUser(t, handler, user))
	if len(due) != 0 {
		t.Fatalf("expected no due schedules, got %d", len(due))
	}
}
