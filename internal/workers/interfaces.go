// Package workers provides the background workers of the sync client and a
// Workers aggregate that starts and stops them as one unit.
package workers

import "context"

// Worker is a background process with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and
// keep running until ctx is done or Stop is called. Stop blocks until the
// worker has fully terminated and is safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
