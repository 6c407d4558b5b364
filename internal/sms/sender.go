// Package sms dispatches text messages through an external gateway. The
// application treats dispatch as a boundary call: failures are reported,
// never propagated as crashes, and there are no retries.
package sms

// Sender delivers one message to one mobile number.
type Sender interface {
	Send(toNumber string, body string) error
}
