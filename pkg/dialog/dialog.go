// Package dialog defines the notification collaborator invoked after submit
// and after schema loading, together with a templated message catalog, a
// terminal implementation and a recorder for headless use.
package dialog

import "context"

// Notifier shows a message with a title and reports whether the user
// acknowledged it.
type Notifier interface {
	Alert(ctx context.Context, message, title string) (bool, error)
	Success(ctx context.Context, message, title string) (bool, error)
	Error(ctx context.Context, message, title string) (bool, error)
}

// Prompter asks the user for a schema document. ok is false when the user
// cancelled.
type Prompter interface {
	PromptJSON(ctx context.Context, message, title, defaultValue string) (text string, ok bool, err error)
}

// Dialog combines both collaborator roles.
type Dialog interface {
	Notifier
	Prompter
}

// Kind selects the Notifier method used for a Message.
type Kind string

const (
	KindAlert   Kind = "alert"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a rendered notification. Body may contain <br> line breaks.
type Message struct {
	Kind  Kind
	Title string
	Body  string
}

// Notify dispatches m to the Notifier method matching its kind. A nil
// notifier acknowledges silently.
func Notify(ctx context.Context, n Notifier, m Message) (bool, error) {
	if n == nil {
		return true, nil
	}
	switch m.Kind {
	case KindSuccess:
		return n.Success(ctx, m.Body, m.Title)
	case KindError:
		return n.Error(ctx, m.Body, m.Title)
	default:
		return n.Alert(ctx, m.Body, m.Title)
	}
}
