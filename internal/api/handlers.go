package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/db"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
	"github.com/harshithareddy1810/Med-Tracker/internal/sms"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey       []byte
	cookieSecure    bool
	smsSender       sms.Sender
	challenges      *otpChallengeStore
	templates       map[string]*template.Template
	repositories    *db.Repositories
	authService     *services.AuthService
	medicineService *services.MedicineService
	doseService     *services.DoseService
}

const (
	authCookieName         = "medtracker_auth"
	flashCookieName        = "medtracker_flash"
	pendingLoginCookieName = "medtracker_pending_login"
	contextUserKey         = "current_user"
)

// Login sessions always use remember-me semantics: the cookie carries an
// explicit expiry and survives browser restarts.
const authTokenTTL = 30 * 24 * time.Hour

// otpChallengeTTL bounds how long a dispatched passcode stays verifiable.
const otpChallengeTTL = 5 * time.Minute

type logDosePayload struct {
	ScheduleID uint   `json:"schedule_id"`
	Status     string `json:"status"`
}

type dueScheduleResponse struct {
	ScheduleID   uint   `json:"schedule_id"`
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
}

func NewHandler(database *gorm.DB, secret string, templateDir string, cookieSecure bool, sender sms.Sender) (*Handler, error) {
	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"verify_otp",
		"dashboard",
		"edit_medicine",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		smsSender:    sender,
		challenges:   newOTPChallengeStore(otpChallengeTTL),
		templates:    templates,
	}
	return handler.withDependencies(database), nil
}
