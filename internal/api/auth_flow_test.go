package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/harshithareddy1810/Med-Tracker/internal/models"
)

var otpDigitsPattern = regexp.MustCompile(`\d{6}`)

func postForm(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func TestLoginFlowCreatesUserAndSession(t *testing.T) {
	app, _, database, sender := newTestApp(t)

	response, err := app.Test(postForm(t, "/login", url.Values{"mobile": {"+15551234567"}}), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/verify-otp" {
		t.Fatalf("expected redirect to /verify-otp, got %q", location)
	}

	pendingToken := responseCookieValue(response.Cookies(), pendingLoginCookieName)
	if pendingToken == "" {
		t.Fatal("expected pending login cookie")
	}

	message := sender.lastMessage(t)
	if message.To != "+15551234567" {
		t.Fatalf("expected OTP dispatched to submitted number, got %q", message.To)
	}
	otp := otpDigitsPattern.FindString(message.Body)
	if otp == "" {
		t.Fatalf("expected six-digit OTP in message body %q", message.Body)
	}

	verifyRequest := postForm(t, "/verify-otp", url.Values{"otp": {otp}})
	verifyRequest.Header.Set("Cookie", pendingLoginCookieName+"="+pendingToken)
	verifyResponse, err := app.Test(verifyRequest, -1)
	if err != nil {
		t.Fatalf("verify request failed: %v", err)
	}
	defer verifyResponse.Body.Close()

	if verifyResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", verifyResponse.StatusCode)
	}
	if location := verifyResponse.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}
	if responseCookieValue(verifyResponse.Cookies(), authCookieName) == "" {
		t.Fatal("expected auth cookie after successful verification")
	}

	var user models.User
	if err := database.Where("mobile_number = ?", "+15551234567").First(&user).Error; err != nil {
		t.Fatalf("expected user created on first verification: %v", err)
	}
}

func TestLoginRejectsMalformedMobileNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
	}{
		{name: "missing plus prefix", mobile: "15551234567"},
		{name: "too short", mobile: "+12345"},
		{name: "empty", mobile: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, database, sender := newTestApp(t)

			response, err := app.Test(postForm(t, "/login", url.Values{"mobile": {tt.mobile}}), -1)
			if err != nil {
				t.Fatalf("login request failed: %v", err)
			}
			defer response.Body.Close()

			if location := response.Header.Get("Location"); location != "/login" {
				t.Fatalf("expected redirect back to /login, got %q", location)
			}
			if responseCookieValue(response.Cookies(), pendingLoginCookieName) != "" {
				t.Fatal("did not expect a pending login cookie")
			}
			if len(sender.messages) != 0 {
				t.Fatal("did not expect any OTP dispatch")
			}

			var count int64
			if err := database.Model(&models.User{}).Count(&count).Error; err != nil {
				t.Fatalf("count users: %v", err)
			}
			if count != 0 {
				t.Fatalf("expected no users created, got %d", count)
			}
		})
	}
}

func TestLoginReportsDispatchFailure(t *testing.T) {
	app, handler, _, sender := newTestApp(t)
	sender.failWith = errors.New("gateway unavailable")

	response, err := app.Test(postForm(t, "/login", url.Values{"mobile": {"+15551234567"}}), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect back to /login, got %q", location)
	}
	if responseCookieValue(response.Cookies(), pendingLoginCookieName) != "" {
		t.Fatal("did not expect a pending login cookie after dispatch failure")
	}
	if len(handler.challenges.challenges) != 0 {
		t.Fatal("did not expect a stored challenge after dispatch failure")
	}
}

func TestVerifyOTPMismatchLeavesUserUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		otp  string
	}{
		{name: "wrong code", otp: "000000"},
		{name: "non numeric", otp: "abc123"},
		{name: "empty", otp: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, database, sender := newTestApp(t)

			loginResponse, err := app.Test(postForm(t, "/login", url.Values{"mobile": {"+15551234567"}}), -1)
			if err != nil {
				t.Fatalf("login request failed: %v", err)
			}
			defer loginResponse.Body.Close()
			pendingToken := responseCookieValue(loginResponse.Cookies(), pendingLoginCookieName)

			dispatched := otpDigitsPattern.FindString(sender.lastMessage(t).Body)
			if tt.otp == dispatched {
				t.Fatalf("test OTP %q collides with dispatched code", tt.otp)
			}

			verifyRequest := postForm(t, "/verify-otp", url.Values{"otp": {tt.otp}})
			verifyRequest.Header.Set("Cookie", pendingLoginCookieName+"="+pendingToken)
			verifyResponse, err := app.Test(verifyRequest, -1)
			if err != nil {
				t.Fatalf("verify request failed: %v", err)
			}
			defer verifyResponse.Body.Close()

			if location := verifyResponse.Header.Get("Location"); location != "/verify-otp" {
				t.Fatalf("expected redirect back to /verify-otp, got %q", location)
			}
			if responseCookieValue(verifyResponse.Cookies(), authCookieName) != "" {
				t.Fatal("did not expect an auth cookie after mismatch")
			}

			var count int64
			if err := database.Model(&models.User{}).Count(&count).Error; err != nil {
				t.Fatalf("count users: %v", err)
			}
			if count != 0 {
				t.Fatalf("expected no users created, got %d", count)
			}
		})
	}
}

func TestVerifyOTPWithoutPendingChallengeRedirectsToLogin(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	pageRequest := httptest.NewRequest(http.MethodGet, "/verify-otp", nil)
	pageResponse, err := app.Test(pageRequest, -1)
	if err != nil {
		t.Fatalf("verify page request failed: %v", err)
	}
	defer pageResponse.Body.Close()
	if location := pageResponse.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}

	submitResponse, err := app.Test(postForm(t, "/verify-otp", url.Values{"otp": {"123456"}}), -1)
	if err != nil {
		t.Fatalf("verify submit failed: %v", err)
	}
	defer submitResponse.Body.Close()
	if location := submitResponse.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, handler, database, _ := newTestApp(t)
	user := createTestUser(t, database, "+15551234567")

	request := httptest.NewRequest(http.MethodGet, "/logout", nil)
	request.Header.Set("Cookie", authCookieForUser(t, handler, user))
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	defer response.Body.Close()

	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			t.Fatal("expected auth cookie to be cleared")
		}
	}
}

func TestDashboardRequiresAuthentication(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}

func TestAPIRequiresAuthenticationWithJSONError(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/api/schedules", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("schedules request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}
