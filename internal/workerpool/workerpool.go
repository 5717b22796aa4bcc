// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workerpool implements the bounded-concurrency fan-out used by
// stat/filter/pafcov and MAF-mode call (SPEC_FULL §5): a semaphore-sized
// goroutine per item, grounded on bebop-poly/commands.go's convert command
// (one goroutine per unit of work guarded by a sync.WaitGroup).
package workerpool

import "sync"

// Run applies fn to every item in items, running up to n at a time. It
// returns the first non-nil error fn produces, after all in-flight calls
// finish, matching the teacher's wg.Wait()-then-check-error shape.
func Run[T any](n int, items []T, fn func(T) error) error {
	if n <= 0 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}
	if n == 0 {
		return nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, n)
	errs := make(chan error, len(items))

	for _, item := range items {
		item := item
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(item); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
