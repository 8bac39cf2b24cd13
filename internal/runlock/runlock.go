// Package runlock serializes mutating batch runs per working directory.
//
// The backup-once guarantee is a check-then-act on filesystem existence;
// holding an exclusive lock for the duration of a run keeps a second
// concurrent invocation from racing that check.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the lock file created inside the working directory.
const LockFileName = ".clipbatch.lock"

// Lock holds an exclusive run lock until released.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes a non-blocking exclusive lock scoped to dir. It fails
// immediately when another run holds the lock.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another clipbatch run is active in %s", dir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
