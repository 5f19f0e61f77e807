package session

import (
	"MyStorage/internal/repository"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// TokenKey is the storage key the bearer token lives under.
const TokenKey = "token"

// Session owns the bearer token. It is loaded from the setting store once,
// mirrored back on every change and broadcast to subscribers.
type Session struct {
	mutex       sync.RWMutex
	token       string
	settings    repository.SettingRepository
	log         *logrus.Logger
	nextID      int
	subscribers map[int]func(token string)
	now         func() time.Time
}

func NewSession(settings repository.SettingRepository, log *logrus.Logger) (*Session, error) {
	return newSession(settings, log, time.Now)
}

func newSession(settings repository.SettingRepository, log *logrus.Logger, now func() time.Time) (*Session, error) {
	s := &Session{
		settings:    settings,
		log:         log,
		subscribers: make(map[int]func(token string)),
		now:         now,
	}
	token, ok, err := settings.Get(TokenKey)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	if !ok || token == "" {
		return s, nil
	}
	if expired(token, now()) {
		log.WithFields(logrus.Fields{
			"session": "init",
		}).Info("stored token expired, clearing")
		if err := settings.Remove(TokenKey); err != nil {
			return nil, fmt.Errorf("clear expired token: %w", err)
		}
		return s, nil
	}
	s.token = token
	return s, nil
}

func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.token
}

func (s *Session) Active() bool {
	return s.Token() != ""
}

// Set replaces the token and persists it. An empty token behaves like Clear.
func (s *Session) Set(token string) error {
	if token == "" {
		return s.Clear()
	}
	if err := s.settings.Put(TokenKey, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.swap(token)
	return nil
}

// Clear drops the token. The in-memory value is cleared even when the
// store fails so a rejected credential is never sent again.
func (s *Session) Clear() error {
	had := s.swap("")
	err := s.settings.Remove(TokenKey)
	if had {
		s.log.WithFields(logrus.Fields{
			"session": "clear",
		}).Debug("session token cleared")
	}
	if err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Subscribe registers fn for token changes and returns its unsubscribe func.
func (s *Session) Subscribe(fn func(token string)) func() {
	s.mutex.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mutex.Unlock()
	return func() {
		s.mutex.Lock()
		delete(s.subscribers, id)
		s.mutex.Unlock()
	}
}

// swap stores token and notifies subscribers when the value changed.
// It reports whether a token was present before.
func (s *Session) swap(token string) bool {
	s.mutex.Lock()
	previous := s.token
	s.token = token
	var listeners []func(string)
	if previous != token {
		for _, fn := range s.subscribers {
			listeners = append(listeners, fn)
		}
	}
	s.mutex.Unlock()
	for _, fn := range listeners {
		fn(token)
	}
	return previous != ""
}

// expired peeks at the exp claim without verifying. Opaque tokens never expire here.
func expired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
