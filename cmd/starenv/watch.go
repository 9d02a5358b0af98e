package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rjeczalik/notify"
)

// watchedPaths returns the set of files to watch and the set of directories that contain them. Paths are absolute
// and have symlinks resolved, as notify reports events on resolved paths.
func watchedPaths(paths []string) (files, dirs map[string]bool, err error) {
	files, dirs = map[string]bool{}, map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, err
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			// The file may not exist yet. Resolve its directory instead.
			dir := filepath.Dir(abs)
			if d, err := filepath.EvalSymlinks(dir); err == nil {
				dir = d
			}
			resolved = filepath.Join(dir, filepath.Base(abs))
		}
		files[resolved], dirs[filepath.Dir(resolved)] = true, true
	}
	return files, dirs, nil
}

// watch runs the script at path, then re-runs it against a freshly-built environment each time the script or one of
// the workspace's env files changes.
func (w *workspace) watch(ctx context.Context, path string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	files, dirs, err := watchedPaths(append([]string{path}, w.envFiles...))
	if err != nil {
		return err
	}

	events := make(chan notify.EventInfo, 1000)
	for dir := range dirs {
		if err := notify.Watch(dir, events, notify.Write, notify.Create, notify.Rename); err != nil {
			notify.Stop(events)
			return err
		}
	}
	defer notify.Stop(events)

	runs := make(chan struct{}, 1)
	runsDone := make(chan struct{})
	go func() {
		defer close(runsDone)
		for range runs {
			if err := w.run(ctx, path); err != nil {
				w.renderer.ReloadFailed(err)
			}
		}
	}()
	defer func() {
		close(runs)
		<-runsDone
	}()

	runs <- struct{}{}

	dirty := false
	rate := time.NewTicker(500 * time.Millisecond)
	defer rate.Stop()
	for {
		select {
		case event := <-events:
			if files[event.Path()] {
				dirty = true
				w.renderer.FileChanged(event.Path())
			}

		case <-rate.C:
			if dirty {
				select {
				case runs <- struct{}{}:
					dirty = false
				default:
					// A run is still pending.
				}
			}

		case <-ctx.Done():
			return nil
		}
	}
}
