package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
)

// RemoteConfig configures the hosted identity service user endpoint.
type RemoteConfig struct {
	BaseURL    string
	ServiceKey string
	HTTPClient *http.Client
}

// RemoteVerifier asks the identity service who owns a token.
type RemoteVerifier struct {
	cfg RemoteConfig
}

func NewRemoteVerifier(cfg RemoteConfig) *RemoteVerifier {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return &RemoteVerifier{cfg: cfg}
}

func (v *RemoteVerifier) Verify(ctx context.Context, credential string) (*entity.Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("apikey", v.cfg.ServiceKey)

	res, err := v.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case res.StatusCode < 200 || res.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode user: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(payload.ID) == "" {
		return nil, ErrInvalidToken
	}

	return &entity.Identity{ID: payload.ID, Email: payload.Email}, nil
}
