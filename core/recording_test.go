package core_test

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// recordingT is a core.TB that keeps failures instead of reporting them.
// FailNow ends the calling goroutine like testing.T does, so doubles must
// be driven through runBound.
type recordingT struct {
	mu       sync.Mutex
	errors   []string
	failed   bool
	cleanups []func()
}

func (r *recordingT) Logf(string, ...any) {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *recordingT) Helper() {}

func (r *recordingT) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

// finish runs the registered cleanups, last first
func (r *recordingT) finish() {
	for len(r.cleanups) > 0 {
		f := r.cleanups[len(r.cleanups)-1]
		r.cleanups = r.cleanups[:len(r.cleanups)-1]
		f()
	}
}

func (r *recordingT) output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.errors, "\n")
}

func (r *recordingT) failedNow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// runBound runs f on its own goroutine and waits for it to return or be
// stopped by FailNow.
func runBound(f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	<-done
}
