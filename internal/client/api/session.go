package api

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
)

// SessionState is either LoggedOut or LoggedIn.
type SessionState interface {
	// currentUser returns the logged in user or nil.
	currentUser() *User
}

// LoggedOut is the state without a verified user.
type LoggedOut struct{}

func (LoggedOut) currentUser() *User {
	return nil
}

// LoggedIn is the state after a successful verification.
type LoggedIn struct {
	// User is the verified user. It always has a non-empty Wwuid.
	User *User
}

func (s LoggedIn) currentUser() *User {
	return s.User
}

// VerifyCallback receives the verified user, or nil when nobody is logged in.
type VerifyCallback func(user *User)

// Verify re-checks the session and replaces the session state.
//
// Without a session cookie no request is made and the callback is not invoked.
// Otherwise the verify endpoint is queried; its "user" field decides the new state.
// Failures are recovered locally: the state becomes LoggedOut and the callback receives nil,
// or the error is logged when there is no callback.
func (s *ServiceImpl) Verify(ctx context.Context, callback VerifyCallback) *User {
	ctx = logger.WithName(ctx, "session")

	if !HasSessionCookie(s.cookies.CookieString(), s.sessionCookieName) {
		logger.DebugKV(ctx, "No session cookie, logged out", "cookie", s.sessionCookieName)
		s.setSession(LoggedOut{})

		return nil
	}

	options := CreateOptions(nil, EncodingJSON)

	response, err := s.raw.fetch(ctx, http.MethodGet, s.verifyURI, options, http.NoBody)
	if err != nil {
		s.setSession(LoggedOut{})

		if callback != nil {
			callback(nil)
		} else {
			logger.ErrorKV(ctx, "Failed to verify session", "uri", s.verifyURI, "error", err)
		}

		return nil
	}

	user := s.setCurrentUser(response.Get(userField))

	if user != nil {
		logger.DebugKV(ctx, "Session verified", "wwuid", user.Wwuid)
	}

	if callback != nil {
		callback(user)
	}

	return user
}

// IsLoggedOn reports whether the last verification produced a user.
func (s *ServiceImpl) IsLoggedOn() bool {
	_, ok := s.Session().(LoggedIn)

	return ok
}

// AuthUser returns the verified user or nil.
func (s *ServiceImpl) AuthUser() *User {
	return s.Session().currentUser()
}

// Session returns the current session state.
func (s *ServiceImpl) Session() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// setCurrentUser moves to LoggedIn when raw describes an identified user, LoggedOut otherwise.
func (s *ServiceImpl) setCurrentUser(raw gjson.Result) *User {
	user := NewUser(raw)
	if !user.IsIdentified() {
		s.setSession(LoggedOut{})

		return nil
	}

	s.setSession(LoggedIn{User: user})

	return user
}

func (s *ServiceImpl) setSession(state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = state
}
