package api

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harshithareddy1810/Med-Tracker/internal/services"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{
		"Title": "Login",
	})
}

// StartLogin validates the submitted mobile number, dispatches a passcode
// and opens a server-held challenge. Nothing is stored when validation or
// dispatch fails; the visitor stays anonymous.
func (handler *Handler) StartLogin(c *fiber.Ctx) error {
	mobileNumber := services.NormalizeMobileNumber(c.FormValue("mobile"))
	if err := services.ValidateMobileNumber(mobileNumber); err != nil {
		return redirectWithFlash(c, "/login", FlashPayload{
			Error:        "Please enter a valid mobile number with country code (e.g., +1234567890).",
			MobileNumber: mobileNumber,
		})
	}

	otp := services.GenerateOTP()
	body := fmt.Sprintf("Your medicine reminder OTP is: %d", otp)
	if err := handler.smsSender.Send(mobileNumber, body); err != nil {
		log.Printf("otp dispatch to %s failed: %v", mobileNumber, err)
		return redirectWithFlash(c, "/login", FlashPayload{
			Error:        "Failed to send OTP. Please try again.",
			MobileNumber: mobileNumber,
		})
	}

	token, err := handler.challenges.Put(mobileNumber, otp, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to start verification")
	}
	handler.setPendingLoginCookie(c, token)

	return redirectWithFlash(c, "/verify-otp", FlashPayload{
		Info: "An OTP has been sent to your mobile number.",
	})
}

// ShowVerifyOTPPage is only reachable with a live challenge; otherwise the
// visitor is bounced back to the login entry point.
func (handler *Handler) ShowVerifyOTPPage(c *fiber.Ctx) error {
	if _, _, ok := handler.pendingChallenge(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return handler.render(c, "verify_otp", fiber.Map{
		"Title": "Verify OTP",
	})
}

// VerifyOTP completes the login: exact integer equality against the live
// challenge, user looked up or created by mobile number, challenge burned.
// Non-numeric input is a plain verification failure, never a crash.
func (handler *Handler) VerifyOTP(c *fiber.Ctx) error {
	token, challenge, ok := handler.pendingChallenge(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	submitted, err := strconv.Atoi(strings.TrimSpace(c.FormValue("otp")))
	if err != nil || submitted != challenge.OTP {
		return redirectWithFlash(c, "/verify-otp", FlashPayload{
			Error: "Invalid OTP. Please try again.",
		})
	}

	user, err := handler.authService.FindOrCreateByMobileNumber(challenge.MobileNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to sign in")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to create session")
	}
	handler.challenges.Delete(token)
	handler.clearPendingLoginCookie(c)

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) pendingChallenge(c *fiber.Ctx) (string, otpChallenge, bool) {
	token := strings.TrimSpace(c.Cookies(pendingLoginCookieName))
	if token == "" {
		return "", otpChallenge{}, false
	}
	challenge, ok := handler.challenges.Get(token, time.Now())
	if !ok {
		handler.clearPendingLoginCookie(c)
		return "", otpChallenge{}, false
	}
	return token, challenge, true
}

func (handler *Handler) setPendingLoginCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     pendingLoginCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(otpChallengeTTL),
	})
}

func (handler *Handler) clearPendingLoginCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     pendingLoginCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
