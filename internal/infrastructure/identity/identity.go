// Package identity resolves bearer credentials issued by the hosted identity
// service into user identities.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
)

var (
	// ErrUnauthorized covers empty, malformed or otherwise unusable credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidToken means the identity service rejected the token (expired, revoked, bad signature).
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnavailable means the identity service could not give an answer.
	ErrUnavailable = errors.New("identity service unavailable")
	// ErrUnconfigured means no verification backend is configured.
	ErrUnconfigured = errors.New("identity service not configured")
)

const (
	ModeAuto   = ""
	ModeRemote = "remote"
	ModeJWT    = "jwt"
)

// Verifier resolves a bearer credential to an identity.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*entity.Identity, error)
}

// Options selects and configures a Verifier.
type Options struct {
	Mode       string
	URL        string
	ServiceKey string
	JWTSecret  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New picks a verifier from opts. In auto mode the remote verifier wins when
// both URL and service key are present, then the local JWT verifier.
// With nothing configured it returns Unconfigured rather than failing.
func New(opts Options) (Verifier, error) {
	remoteReady := opts.URL != "" && opts.ServiceKey != ""
	jwtReady := opts.JWTSecret != ""

	switch strings.ToLower(strings.TrimSpace(opts.Mode)) {
	case ModeAuto:
		switch {
		case remoteReady:
			return newRemote(opts), nil
		case jwtReady:
			return NewJWTVerifier(opts.JWTSecret), nil
		}
		return Unconfigured{}, nil
	case ModeRemote:
		if !remoteReady {
			return Unconfigured{}, nil
		}
		return newRemote(opts), nil
	case ModeJWT:
		if !jwtReady {
			return Unconfigured{}, nil
		}
		return NewJWTVerifier(opts.JWTSecret), nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", opts.Mode)
	}
}

func newRemote(opts Options) *RemoteVerifier {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return NewRemoteVerifier(RemoteConfig{BaseURL: opts.URL, ServiceKey: opts.ServiceKey, HTTPClient: client})
}

// IsConfigured reports whether v can verify anything at all.
func IsConfigured(v Verifier) bool {
	if v == nil {
		return false
	}
	_, unconfigured := v.(Unconfigured)
	return !unconfigured
}

// Unconfigured rejects every call with ErrUnconfigured.
type Unconfigured struct{}

func (Unconfigured) Verify(context.Context, string) (*entity.Identity, error) {
	return nil, ErrUnconfigured
}
