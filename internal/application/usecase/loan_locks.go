package usecase

import "sync"

// loanLocks serializes repayment recording per loan identifier: exactly one
// writer per loan at any time. Simulation and reads never take these locks.
type loanLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLoanLocks() *loanLocks {
	return &loanLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given loan id and returns its unlock
// function.
func (l *loanLocks) acquire(loanID string) func() {
	l.mu.Lock()
	m, ok := l.locks[loanID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[loanID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
