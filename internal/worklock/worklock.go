// Package worklock guards a workbook with an advisory file lock so two
// watchlog invocations cannot mutate the same sheet at once.
package worklock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Acquire takes an exclusive lock on a sibling .lock file next to the
// workbook. The returned release function removes the lock; it is safe to
// call exactly once, typically via defer.
func Acquire(workbookPath string) (func(), error) {
	lock := flock.New(workbookPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock workbook %s: %w", workbookPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("workbook %s is locked by another watchlog run", workbookPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
