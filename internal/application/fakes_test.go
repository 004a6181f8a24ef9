package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/infrastructure/identity"
)

// tokenVerifier maps known tokens to identities; anything else is rejected.
type tokenVerifier struct {
	mu     sync.Mutex
	tokens map[string]entity.Identity
	err    error
	calls  int
}

func newVerifier(pairs ...string) *tokenVerifier {
	v := &tokenVerifier{tokens: map[string]entity.Identity{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.tokens[pairs[i]] = entity.Identity{ID: pairs[i+1], Email: pairs[i+1] + "@example.com"}
	}
	return v
}

func (v *tokenVerifier) Verify(_ context.Context, credential string) (*entity.Identity, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	id, ok := v.tokens[credential]
	if !ok {
		return nil, identity.ErrInvalidToken
	}
	return &id, nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

type stubCompleter struct {
	reply string
	err   error
	got   string
}

func (c *stubCompleter) Complete(_ context.Context, message string) (string, error) {
	c.got = message
	return c.reply, c.err
}

var errBoom = errors.New("boom")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
