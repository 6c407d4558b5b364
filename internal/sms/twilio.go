package sms

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

var ErrMissingCredentials = errors.New("twilio credentials are not configured")

// TwilioSender posts messages to the Twilio REST API. A zero or partial
// configuration fails closed: Send returns an error without attempting a
// network call.
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioSenderFromEnv reads TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and
// TWILIO_PHONE_NUMBER. Missing values are tolerated at construction time
// and rejected on Send, so the app can boot without a gateway configured.
func NewTwilioSenderFromEnv() *TwilioSender {
	return NewTwilioSender(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_PHONE_NUMBER"),
	)
}

func NewTwilioSender(accountSID string, authToken string, fromNumber string) *TwilioSender {
	return &TwilioSender{
		accountSID: strings.TrimSpace(accountSID),
		authToken:  strings.TrimSpace(authToken),
		fromNumber: strings.TrimSpace(fromNumber),
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (sender *TwilioSender) Send(toNumber string, body string) error {
	if sender.accountSID == "" || sender.authToken == "" || sender.fromNumber == "" {
		return ErrMissingCredentials
	}

	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", sender.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", sender.baseURL, url.PathEscape(sender.accountSID))
	request, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	request.SetBasicAuth(sender.accountSID, sender.authToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := sender.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("send twilio request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(response.Body, 2048))
		return fmt.Errorf("twilio rejected message: status %d: %s", response.StatusCode, strings.TrimSpace(string(payload)))
	}
	return nil
}
