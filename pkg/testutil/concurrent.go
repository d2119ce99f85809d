// Package testutil holds helpers shared by store tests.
package testutil

import (
	"errors"
	"sync"

	"ainadeul/pkg/platform/sentinel"
)

// ConcurrentResult counts how the calls of a RunConcurrent finished.
type ConcurrentResult struct {
	Successes int32
	Conflicts int32
	NotFounds int32
	Errors    int32

	// Failures keeps the unclassified errors for assertion messages.
	Failures []error
}

func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Conflicts + r.NotFounds + r.Errors
}

func (r *ConcurrentResult) record(err error) {
	switch {
	case err == nil:
		r.Successes++
	case errors.Is(err, sentinel.ErrConflict):
		r.Conflicts++
	case errors.Is(err, sentinel.ErrNotFound):
		r.NotFounds++
	default:
		r.Errors++
		r.Failures = append(r.Failures, err)
	}
}

// RunConcurrent calls fn from n goroutines released at the same instant and
// classifies each result by store sentinel.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var (
		wg      sync.WaitGroup
		gate    = make(chan struct{})
		results = make([]error, n)
	)
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			<-gate
			results[i] = fn(i)
		}()
	}
	close(gate)
	wg.Wait()

	res := &ConcurrentResult{}
	for _, err := range results {
		res.record(err)
	}
	return res
}
