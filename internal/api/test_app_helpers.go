package api

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/harshithareddy1810/Med-Tracker/internal/db"
	"github.com/harshithareddy1810/Med-Tracker/internal/models"
	"gorm.io/gorm"
)

// recordingSender captures outbound messages so tests can read the
// dispatched OTP; failWith switches it into a failing gateway.
type recordingSender struct {
	mu       sync.Mutex
	messages []recordedMessage
	failWith error
}

type recordedMessage struct {
	To   string
	Body string
}

func (sender *recordingSender) Send(toNumber string, body string) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	if sender.failWith != nil {
		return sender.failWith
	}
	sender.messages = append(sender.messages, recordedMessage{To: toNumber, Body: body})
	return nil
}

func (sender *recordingSender) lastMessage(t *testing.T) recordedMessage {
	t.Helper()
	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.messages) == 0 {
		t.Fatal("expected at least one dispatched message")
	}
	return sender.messages[len(sender.messages)-1]
}

func newTestHandler(t *testing.T) (*Handler, *gorm.DB, *recordingSender) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	templatesDir := filepath.Join(filepath.Dir(filepath.Dir(testFile)), "templates")
	databasePath := filepath.Join(t.TempDir(), "medtracker-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	sender := &recordingSender{}
	handler, err := NewHandler(database, "test-secret-key", templatesDir, false, sender)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return handler, database, sender
}

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB, *recordingSender) {
	t.Helper()

	handler, database, sender := newTestHandler(t)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database, sender
}

// newProductionApp assembles the app with the same middleware chain main
// installs, so tests cover requests as the deployed server sees them.
func newProductionApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB, *recordingSender) {
	t.Helper()

	handler, database, sender := newTestHandler(t)
	app := fiber.New()
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(CSRFProtection(false))
	RegisterRoutes(app, handler)
	return app, handler, database, sender
}

func createTestUser(t *testing.T, database *gorm.DB, mobileNumber string) models.User {
	t.Helper()
	user := models.User{MobileNumber: mobileNumber, Timezone: "UTC"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func authCookieForUser(t *testing.T, handler *Handler, user models.User) string {
	t.Helper()
	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		t.Fatalf("build auth token: %v", err)
	}
	return authCookieName + "=" + token
}

func createTestMedicine(t *testing.T, database *gorm.DB, userID uint, name string, dosage string, schedules ...models.Schedule) models.Medicine {
	t.Helper()
	medicine := models.Medicine{UserID: userID, Name: name, Dosage: dosage}
	if err := database.Create(&medicine).Error; err != nil {
		t.Fatalf("create test medicine: %v", err)
	}
	for index := range schedules {
		schedules[index].MedicineID = medicine.ID
		if err := database.Create(&schedules[index]).Error; err != nil {
			t.Fatalf("create test schedule: %v", err)
		}
	}
	return medicine
}
