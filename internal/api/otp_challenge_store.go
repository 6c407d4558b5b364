package api

import (
	"sync"
	"time"

	"github.com/harshithareddy1810/Med-Tracker/internal/security"
)

const challengeTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// otpChallenge is the server-held state of one authentication attempt: the
// mobile number pending verification and the passcode dispatched to it.
type otpChallenge struct {
	MobileNumber string
	OTP          int
	ExpiresAt    time.Time
}

// otpChallengeStore keeps challenges in memory keyed by an opaque random
// token, with an explicit TTL. Expired entries are pruned on access.
type otpChallengeStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	challenges map[string]otpChallenge
}

func newOTPChallengeStore(ttl time.Duration) *otpChallengeStore {
	return &otpChallengeStore{
		ttl:        ttl,
		challenges: make(map[string]otpChallenge),
	}
}

func (store *otpChallengeStore) Put(mobileNumber string, otp int, now time.Time) (string, error) {
	token, err := security.RandomString(32, challengeTokenAlphabet)
	if err != nil {
		return "", err
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneLocked(now)
	store.challenges[token] = otpChallenge{
		MobileNumber: mobileNumber,
		OTP:          otp,
		ExpiresAt:    now.Add(store.ttl),
	}
	return token, nil
}

func (store *otpChallengeStore) Get(token string, now time.Time) (otpChallenge, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	challenge, exists := store.challenges[token]
	if !exists {
		return otpChallenge{}, false
	}
	if !challenge.ExpiresAt.After(now) {
		delete(store.challenges, token)
		return otpChallenge{}, false
	}
	return challenge, true
}

func (store *otpChallengeStore) Delete(token string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.challenges, token)
}

func (store *otpChallengeStore) pruneLocked(now time.Time) {
	for token, challenge := range store.challenges {
		if !challenge.ExpiresAt.After(now) {
			delete(store.challenges, token)
		}
	}
}
