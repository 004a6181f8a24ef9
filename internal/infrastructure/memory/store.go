// Package memory provides an in-process UnitOfWork with transactional
// snapshots. It backs service and handler tests; nothing in it is durable.
package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/growthpoints/internal/domain/entity"
	"github.com/oksasatya/growthpoints/internal/domain/repository"
)

type state struct {
	tasks    map[string]entity.Task
	profiles map[string]entity.Profile
	credits  map[string]entity.PointCredit
}

func (s state) clone() state {
	return state{
		tasks:    maps.Clone(s.tasks),
		profiles: maps.Clone(s.profiles),
		credits:  maps.Clone(s.credits),
	}
}

// Store serializes every transaction behind one mutex, which gives the same
// outcome as row locks for the single-task flows it is used with.
type Store struct {
	mu    sync.Mutex
	st    state
	calls int

	// Fault injection, checked before the matching write.
	SetStatusErr error
	CreditErr    error
}

func NewStore() *Store {
	return &Store{st: state{
		tasks:    map[string]entity.Task{},
		profiles: map[string]entity.Profile{},
		credits:  map[string]entity.PointCredit{},
	}}
}

// PutTask inserts or replaces a task.
func (s *Store) PutTask(t entity.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.st.tasks[t.ID] = t
}

// PutProfile inserts or replaces a profile.
func (s *Store) PutProfile(p entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.profiles[p.ID] = p
}

// Task returns a copy of the stored task.
func (s *Store) Task(id string) (entity.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.st.tasks[id]
	return t, ok
}

// Profile returns a copy of the stored profile.
func (s *Store) Profile(id string) (entity.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.profiles[id]
	return p, ok
}

// Credits returns the number of ledger rows.
func (s *Store) Credits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.credits)
}

// Calls returns how many repository operations were executed.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Store) Repos() repository.Repositories {
	return s.bind(true)
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, s.bind(false)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) bind(lock bool) repository.Repositories {
	a := &accessor{s: s, lock: lock}
	return repository.Repositories{
		Tasks:    taskRepo{a},
		Profiles: profileRepo{a},
		Ledger:   ledgerRepo{a},
	}
}

// accessor takes the store lock per operation unless it runs inside WithinTx,
// which already holds it.
type accessor struct {
	s    *Store
	lock bool
}

func (a *accessor) do(fn func(st *state) error) error {
	if a.lock {
		a.s.mu.Lock()
		defer a.s.mu.Unlock()
	}
	a.s.calls++
	return fn(&a.s.st)
}

type taskRepo struct{ a *accessor }

func (r taskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	var out *entity.Task
	err := r.a.do(func(st *state) error {
		t, ok := st.tasks[id]
		if !ok {
			return repository.ErrNotFound
		}
		out = &t
		return nil
	})
	return out, err
}

func (r taskRepo) SetStatus(_ context.Context, id string, from, to entity.TaskStatus) error {
	return r.a.do(func(st *state) error {
		if r.a.s.SetStatusErr != nil {
			return r.a.s.SetStatusErr
		}
		t, ok := st.tasks[id]
		if !ok || t.Status != from {
			return repository.ErrStatusConflict
		}
		t.Status = to
		st.tasks[id] = t
		return nil
	})
}

func (r taskRepo) ListByAssignee(_ context.Context, userID string) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	err := r.a.do(func(st *state) error {
		for _, t := range st.tasks {
			if t.AssignedTo == userID {
				out = append(out, t)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

type profileRepo struct{ a *accessor }

func (r profileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	var out *entity.Profile
	err := r.a.do(func(st *state) error {
		p, ok := st.profiles[id]
		if !ok {
			return repository.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (r profileRepo) Ensure(_ context.Context, id, email string) (*entity.Profile, error) {
	var out *entity.Profile
	err := r.a.do(func(st *state) error {
		p, ok := st.profiles[id]
		if !ok {
			p = entity.Profile{ID: id, Email: email, CreatedAt: time.Now().UTC()}
			st.profiles[id] = p
		}
		out = &p
		return nil
	})
	return out, err
}

type ledgerRepo struct{ a *accessor }

func (r ledgerRepo) Credit(_ context.Context, userID, taskID string, amount int64) error {
	if amount < 0 {
		return repository.ErrNegativeAmount
	}
	return r.a.do(func(st *state) error {
		if r.a.s.CreditErr != nil {
			return r.a.s.CreditErr
		}
		p, ok := st.profiles[userID]
		if !ok {
			return repository.ErrNotFound
		}
		if _, dup := st.credits[taskID]; dup {
			return repository.ErrAlreadyCredited
		}
		p.Points += amount
		st.profiles[userID] = p
		st.credits[taskID] = entity.PointCredit{TaskID: taskID, UserID: userID, Amount: amount, CreatedAt: time.Now().UTC()}
		return nil
	})
}

var _ repository.UnitOfWork = (*Store)(nil)
