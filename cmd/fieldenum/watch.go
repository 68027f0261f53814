package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/signadot/fieldenum/debug"
)

const watchDelay = 200 * time.Millisecond

// watch runs a pass, then another one each time a Go source file of a
// watched package changes, until ctx is done.
func (g *generator) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	rerun := func() {
		if err := g.pass(); err != nil {
			theLog.Error("generation failed", "error", err)
		}
		if err := g.watchDirs(watcher); err != nil {
			theLog.Error("failed to watch packages", "error", err)
		}
	}
	rerun()
	theLog.Info("watching for changes", "dirs", len(watcher.WatchList()))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !g.relevant(event) {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s\n", event)
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				g.loader.Invalidate()
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			theLog.Debug("change detected, regenerating")
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			theLog.Error("watcher error", "error", err)
		}
	}
}

// relevant reports whether event concerns a Go source file other than one
// this generator wrote.
func (g *generator) relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".go") || strings.HasSuffix(event.Name, "_test.go") {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return !g.outputs[abs]
}

// watchDirs adds the directory of every selected package to watcher.
func (g *generator) watchDirs(watcher *fsnotify.Watcher) error {
	packages, err := g.packages()
	if err != nil {
		return err
	}
	watched := map[string]bool{}
	for _, d := range watcher.WatchList() {
		watched[d] = true
	}
	for _, pkg := range packages {
		if watched[pkg.Dir] {
			continue
		}
		if err := watcher.Add(pkg.Dir); err != nil {
			return fmt.Errorf("failed to watch dir %q: %w", pkg.Dir, err)
		}
		watched[pkg.Dir] = true
	}
	return nil
}
