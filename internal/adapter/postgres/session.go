package postgres

import (
	"context"
	"fmt"
	"sync"
)

// StagedOp is a deferred write. It returns the number of rows it changed.
type StagedOp func(ctx context.Context) (int64, error)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Session is a unit of work shared by the repositories of one service.
// Staged operations run in staging order inside a single transaction when
// Save is called. Safe for concurrent use.
type Session struct {
	tx txRunner

	mu     sync.Mutex
	staged []StagedOp
}

func NewSession(tx txRunner) *Session {
	return &Session{tx: tx}
}

// Stage appends op to the pending list.
func (s *Session) Stage(op StagedOp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, op)
}

// Pending returns the number of staged operations.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.staged)
}

// Discard drops every staged operation without touching the store.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = nil
}

// Save runs the staged operations atomically and returns the total number
// of rows changed. With nothing staged it returns 0 without opening a
// transaction. If any operation fails the transaction rolls back and the
// operations stay staged ahead of anything staged meanwhile.
func (s *Session) Save(ctx context.Context) (int64, error) {
	s.mu.Lock()
	ops := s.staged
	s.staged = nil
	s.mu.Unlock()

	if len(ops) == 0 {
		return 0, nil
	}

	var total int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		total = 0
		for i, op := range ops {
			n, err := op(ctx)
			if err != nil {
				return fmt.Errorf("staged operation %d of %d: %w", i+1, len(ops), err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		s.mu.Lock()
		s.staged = append(ops, s.staged...)
		s.mu.Unlock()
		return 0, err
	}
	return total, nil
}
