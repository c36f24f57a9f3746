package services

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyPassword  = errors.New("password required")
	ErrWrongPassword  = errors.New("wrong password")
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
)

// The daily password is derived from the store's local calendar date,
// which is fixed at UTC+8 regardless of server timezone.
var gateZone = time.FixedZone("UTC+8", 8*60*60)

const credentialOffset = 1234

// DailyCredential derives the password for the given instant:
// month*100+day plus a fixed offset, as a decimal string
// (e.g. Dec 2 -> 1202+1234 -> "2436").
func DailyCredential(t time.Time) string {
	t = t.In(gateZone)
	return strconv.Itoa(int(t.Month())*100 + t.Day() + credentialOffset)
}

type SessionService struct {
	TTL time.Duration
	Now func() time.Time // overridable for tests
}

func NewSessionService(ttl time.Duration) *SessionService {
	return &SessionService{TTL: ttl}
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the supplied password against today's credential and
// returns the session expiry on success.
func (s *SessionService) Login(password string) (time.Time, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return time.Time{}, ErrEmptyPassword
	}
	now := s.now()
	if password != DailyCredential(now) {
		return time.Time{}, ErrWrongPassword
	}
	return now.Add(s.TTL), nil
}

// Validate checks a session token. The token is the expiry as epoch
// seconds; nothing signs it, so the only trust boundary is the HttpOnly
// cookie it travels in.
func (s *SessionService) Validate(token string) error {
	if token == "" {
		return ErrNoSession
	}
	exp, err := strconv.ParseInt(token, 10, 64)
	if err != nil || exp < s.now().Unix() {
		return ErrSessionExpired
	}
	return nil
}
