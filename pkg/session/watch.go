package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrAlreadyWatching is returned when Watch is called twice without Close.
var ErrAlreadyWatching = errors.New("session: already watching")

// Watch reloads path whenever it is written or re-created. The directory is
// watched rather than the file so editors that save atomically are caught.
// A save that does not parse or compile keeps the current form. Watching
// stops when ctx is done or Close is called.
func (s *Session) Watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("session: watch %s: %w", path, err)
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		return ErrAlreadyWatching
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("session: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		s.mu.Unlock()
		return fmt.Errorf("session: watch directory: %w", err)
	}
	s.watcher = watcher
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	s.logger.Info().Str("path", abs).Msg("watching schema file for changes")
	go s.watchLoop(ctx, watcher, abs, stopCh, doneCh)
	return nil
}

func (s *Session) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	filename := filepath.Base(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("schema file changed")
			s.reloadFile(ctx, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error().Err(err).Msg("schema watcher error")

		case <-stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) reloadFile(ctx context.Context, path string) {
	text, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("schema reload failed, keeping current form")
		return
	}
	if len(text) == 0 {
		// Editors truncate before writing; wait for the content.
		return
	}
	// loadDocument logs and notifies failures itself.
	_ = s.loadDocumentFrom(ctx, path, text)
}

// Close stops watching. It is safe to call when Watch was never called.
func (s *Session) Close() error {
	s.mu.Lock()
	watcher, stopCh, doneCh := s.watcher, s.stopCh, s.doneCh
	s.watcher, s.stopCh, s.doneCh = nil, nil, nil
	s.mu.Unlock()

	if watcher == nil {
		return nil
	}
	close(stopCh)
	err := watcher.Close()
	<-doneCh
	return err
}
