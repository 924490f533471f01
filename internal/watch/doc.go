// Package watch re-runs work when files change.
//
// A Watcher tracks individual files through fsnotify. It watches each
// file's parent directory so editors that save by renaming a temporary file
// over the original are still seen, and filters events down to the tracked
// paths.
//
// Bursts of events are coalesced: after the first event the watcher waits
// for the debounce interval to pass without further events, then calls the
// handler once per changed path, in path order. The handler always runs on
// the goroutine executing Run, so handlers never run concurrently with each
// other.
//
//	w, err := watch.New(func(ev watch.Event) {
//		log.Printf("%s changed (%s)", ev.Path, ev.Op)
//	}, watch.WithDebounce(100*time.Millisecond))
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Add("input.txt"); err != nil {
//		return err
//	}
//	return w.Run(ctx)
package watch
