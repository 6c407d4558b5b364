package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload travels between a redirect and the next page render in a
// short-lived cookie. MobileNumber keeps the login form sticky after a
// validation failure.
type FlashPayload struct {
	Error        string `json:"error,omitempty"`
	Info         string `json:"info,omitempty"`
	Success      string `json:"success,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

func (payload FlashPayload) isEmpty() bool {
	return payload.Error == "" && payload.Info == "" && payload.Success == "" && payload.MobileNumber == ""
}

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload.Error = strings.TrimSpace(payload.Error)
	payload.Info = strings.TrimSpace(payload.Info)
	payload.Success = strings.TrimSpace(payload.Success)
	payload.MobileNumber = strings.TrimSpace(payload.MobileNumber)

	if payload.isEmpty() {
		clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(serialized),
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return payload
}

func clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
