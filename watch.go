package espresso

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must go without write events before
// it is considered completely written.
const settleDelay = 500 * time.Millisecond

// AwaitFile blocks until the output file at path exists and has
// stopped receiving writes, then returns an Extractor for it. This is
// useful when the simulation producing the file is still running:
// plane-wave codes write their XML output progressively and the
// document is well-formed only once the run finishes.
//
// Cancellation and timeouts are the caller's, via ctx.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
//	defer cancel()
//	ext, err := espresso.AwaitFile(ctx, "run/data-file-schema.xml")
//	if err != nil {
//	    // handle error
//	}
//	result, err := ext.Result()
func AwaitFile(ctx context.Context, path string) (*Extractor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: the file itself may not exist yet.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	timer := time.NewTimer(settleDelay)
	defer timer.Stop()
	if _, err := os.Stat(path); err != nil {
		// Nothing to settle yet; the timer is armed again once the
		// file shows up.
		stopTimer(timer)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil, fmt.Errorf("watcher closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				stopTimer(timer)
				timer.Reset(settleDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil, fmt.Errorf("watcher closed")
			}
			return nil, err

		case <-timer.C:
			if _, err := os.Stat(path); err == nil {
				return Open(path), nil
			}
		}
	}
}

// stopTimer stops t and drains its channel if it already fired.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
