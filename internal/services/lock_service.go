package services

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "pocketledger/internal/errors"
)

// Failed passcode attempts tolerated before the lock refuses further tries.
const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
)

// lockService verifies the app passcode against a bcrypt hash.
type lockService struct {
	hash []byte
	now  func() time.Time

	mu          sync.Mutex
	failed      int
	lockedUntil time.Time
}

// NewLockService creates a new LockServicer. An empty hash disables the lock.
func NewLockService(passcodeHash string, now func() time.Time) LockServicer {
	if now == nil {
		now = time.Now
	}
	return &lockService{hash: []byte(passcodeHash), now: now}
}

// HashPasscode returns the bcrypt hash to configure for passcode.
func HashPasscode(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hash), nil
}

// Enabled reports whether a passcode is configured.
func (s *lockService) Enabled() bool {
	return len(s.hash) > 0
}

// Unlock checks passcode. After maxFailedAttempts wrong tries in a row the
// lock rejects every attempt until lockoutDuration has passed.
func (s *lockService) Unlock(passcode string) error {
	if !s.Enabled() {
		return apperrors.ErrLockNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Before(s.lockedUntil) {
		return apperrors.ErrAppLocked
	}

	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(passcode)); err != nil {
		s.failed++
		if s.failed >= maxFailedAttempts {
			s.failed = 0
			s.lockedUntil = now.Add(lockoutDuration)
		}
		return apperrors.ErrInvalidPasscode
	}

	s.failed = 0
	s.lockedUntil = time.Time{}
	return nil
}
