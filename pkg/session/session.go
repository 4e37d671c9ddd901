// Package session owns the active form of an editing session. It compiles a
// schema and initialises form state as one step, swaps both wholesale when new
// schema text arrives, keeps the previous form when that text is broken, and
// reports outcomes through a dialog.Notifier. Every operation is serialised,
// so a file watcher and an interactive caller can share one Session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/dialog"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// ErrNoLoader is returned by Load when the session has no loader.
var ErrNoLoader = errors.New("session: no schema loader configured")

// Session is the serialised owner of a compiled form.
type Session struct {
	mu sync.Mutex

	compiler model.Compiler
	loader   schema.Loader
	notifier dialog.Notifier
	catalog  *dialog.Catalog
	logger   zerolog.Logger
	formOpts []form.Option

	schema schema.Schema
	form   *form.Form

	onRecompile []func(*form.Form)
	onSubmit    []func(form.Record)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New compiles s and initialises its form.
func New(s schema.Schema, options ...Option) (*Session, error) {
	sess := &Session{
		compiler: model.NewCompiler(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(sess)
		}
	}
	if sess.catalog == nil {
		catalog, err := dialog.NewCatalog()
		if err != nil {
			return nil, err
		}
		sess.catalog = catalog
	}

	f, err := sess.build(s)
	if err != nil {
		return nil, err
	}
	sess.schema = s
	sess.form = f
	return sess, nil
}

// OnRecompile registers fn to run with the new form after every recompile.
// Callbacks run while the session is locked and must not call back into it.
func (s *Session) OnRecompile(fn func(*form.Form)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRecompile = append(s.onRecompile, fn)
}

// Recompile replaces the active schema, field model and state with ones built
// from next. On error the active form is kept.
func (s *Session) Recompile(next schema.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recompileLocked(next)
}

func (s *Session) recompileLocked(next schema.Schema) error {
	f, err := s.build(next)
	if err != nil {
		return err
	}
	s.schema = next
	s.form = f
	s.logger.Info().
		Str("title", next.Title).
		Int("fields", len(next.Fields)).
		Msg("form recompiled")
	for _, fn := range s.onRecompile {
		fn(f)
	}
	return nil
}

func (s *Session) build(next schema.Schema) (*form.Form, error) {
	compiled, err := s.compiler.Compile(next)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	opts := append([]form.Option{form.WithLogger(s.logger)}, s.formOpts...)
	f, err := form.New(compiled, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return f, nil
}

// LoadText parses schema text (JSON or YAML) and recompiles from it. Text
// that fails to parse or compile leaves the active form untouched; the
// failure is logged, reported to the notifier and returned.
func (s *Session) LoadText(ctx context.Context, text []byte) error {
	return s.loadDocument(ctx, schema.MustNewDocument(schema.SourceInline("editor"), text))
}

// Load fetches src through the session loader, then behaves like LoadText.
func (s *Session) Load(ctx context.Context, src schema.Source) error {
	if s.loader == nil {
		return ErrNoLoader
	}
	doc, err := s.loader.Load(ctx, src)
	if err != nil {
		s.logger.Error().Err(err).Str("source", src.Location()).Msg("schema load failed, keeping current form")
		s.notifyRejected(ctx, err)
		return fmt.Errorf("session: load %s: %w", src.Location(), err)
	}
	return s.loadDocument(ctx, doc)
}

func (s *Session) loadDocumentFrom(ctx context.Context, path string, text []byte) error {
	return s.loadDocument(ctx, schema.MustNewDocument(schema.SourceFromFile(path), text))
}

func (s *Session) loadDocument(ctx context.Context, doc schema.Document) error {
	parsed, err := schema.ParseDocument(doc)
	if err == nil {
		s.mu.Lock()
		err = s.recompileLocked(parsed)
		s.mu.Unlock()
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("source", doc.Location()).Msg("schema rejected, keeping current form")
		s.notifyRejected(ctx, err)
		return err
	}

	msg, merr := s.catalog.SchemaLoaded(parsed.Title, len(parsed.Fields))
	if merr != nil {
		return merr
	}
	_, nerr := dialog.Notify(ctx, s.notifier, msg)
	return nerr
}

func (s *Session) notifyRejected(ctx context.Context, cause error) {
	msg, err := s.catalog.SchemaRejected(cause)
	if err != nil {
		s.logger.Error().Err(err).Msg("render schema rejection")
		return
	}
	if _, err := dialog.Notify(ctx, s.notifier, msg); err != nil {
		s.logger.Error().Err(err).Msg("notify schema rejection")
	}
}

// Edit asks p for new schema text, prefilled with the active schema, and
// loads it. It reports false when the user cancelled.
func (s *Session) Edit(ctx context.Context, p dialog.Prompter) (bool, error) {
	current, err := s.SchemaText()
	if err != nil {
		return false, err
	}
	message, title, err := s.catalog.SchemaPrompt()
	if err != nil {
		return false, err
	}
	text, ok, err := p.PromptJSON(ctx, message, title, string(current))
	if err != nil || !ok {
		return false, err
	}
	return true, s.LoadText(ctx, []byte(text))
}

// Submit submits the active form. Accepted records are passed to submit
// handlers and announced; rejected ones leave every field touched and are
// announced with the visible messages. The returned error is the form's
// *form.ValidationError or a notifier failure.
func (s *Session) Submit(ctx context.Context) (form.Record, error) {
	s.mu.Lock()
	f := s.form
	rec, err := f.Submit()
	var msg dialog.Message
	var merr error
	if err != nil {
		verr, ok := form.AsValidationError(err)
		if !ok {
			s.mu.Unlock()
			return form.Record{}, err
		}
		s.logger.Info().Int("invalid", len(verr.Fields)).Msg("submit rejected")
		msg, merr = s.catalog.SubmitFailed(f, verr)
	} else {
		s.logger.Info().Int("fields", rec.Len()).Msg("form submitted")
		for _, fn := range s.onSubmit {
			fn(rec)
		}
		msg, merr = s.catalog.SubmitSucceeded(rec)
	}
	s.mu.Unlock()

	if merr != nil {
		return rec, merr
	}
	if _, nerr := dialog.Notify(ctx, s.notifier, msg); nerr != nil {
		return rec, nerr
	}
	return rec, err
}

// Reset restores the active form to its defaults.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.logger.Info().Msg("form reset")
}

// Do runs fn with exclusive access to the active form.
func (s *Session) Do(fn func(*form.Form) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.form)
}

// Form returns the active form. Use Do when other goroutines (such as a
// watcher) may touch the session concurrently.
func (s *Session) Form() *form.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Schema returns the schema the active form was compiled from.
func (s *Session) Schema() schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schema
}

// SchemaText renders the active schema as indented JSON.
func (s *Session) SchemaText() ([]byte, error) {
	return schema.Marshal(s.Schema())
}
