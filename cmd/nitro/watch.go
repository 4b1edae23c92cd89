package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	nitroerrors "github.com/nitro-lang/nitro/pkgs/errors"
)

// debounceDelay collapses the burst of events a single save produces
const debounceDelay = 100 * time.Millisecond

// watch runs fn once, then again after every change to path, until ctx is
// cancelled. Failures of fn are reported and watching continues.
func (a *app) watch(ctx context.Context, path string, fn func() error) error {
	if path == "-" {
		return exitWith(ExitInvalidArguments, nitroerrors.New(nitroerrors.ErrWatch, "cannot watch stdin"))
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrWatch, "cannot resolve path", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrWatch, "failed to create watcher", err))
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrWatch, "failed to watch directory", err).
			WithContext("path", path))
	}

	a.logger.Info("watching", "file", target)
	a.rerun(fn)

	var (
		pending <-chan time.Time
		events  int
	)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopped watching", "file", target, "runs", events+1)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("file changed", "file", target, "op", event.Op.String())
			pending = time.After(debounceDelay)

		case <-pending:
			pending = nil
			events++
			a.rerun(fn)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", "error", err)
		}
	}
}

// rerun invokes fn and reports its failure without stopping the watch
func (a *app) rerun(fn func() error) {
	useColor := shouldUseColor(a.stdout, a.noColor)
	fmt.Fprintln(a.stdout, Colorize("--- "+time.Now().Format(time.TimeOnly)+" ---", ColorGray, useColor))

	if err := fn(); err != nil {
		a.report(err)
	}
}
