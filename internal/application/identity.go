package application

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/infrastructure/identity"
)

// IdentityVerifier resolves a bearer credential to a user.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*entity.Identity, error)
}

// authenticate runs the verifier and converts its failures to service errors.
func authenticate(ctx context.Context, v IdentityVerifier, credential string) (*entity.Identity, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, newError(KindUnauthorized, MsgUnauthorized, identity.ErrUnauthorized)
	}
	if v == nil {
		return nil, newError(KindUnconfigured, MsgIdentityUnconfigured, identity.ErrUnconfigured)
	}

	who, err := v.Verify(ctx, credential)
	switch {
	case err == nil && who != nil && who.ID != "":
		return who, nil
	case err == nil, errors.Is(err, identity.ErrInvalidToken):
		return nil, newError(KindInvalidToken, MsgInvalidToken, err)
	case errors.Is(err, identity.ErrUnauthorized):
		return nil, newError(KindUnauthorized, MsgUnauthorized, err)
	case errors.Is(err, identity.ErrUnconfigured):
		return nil, newError(KindUnconfigured, MsgIdentityUnconfigured, err)
	default:
		return nil, newError(KindInternal, MsgServerError, err)
	}
}
