package dialog

import (
	"context"
	"sync"
)

// Call is one notification captured by a Recorder.
type Call struct {
	Kind    Kind
	Message string
	Title   string
}

// PromptReply scripts the answer to one PromptJSON call.
type PromptReply struct {
	Text string
	OK   bool
	Err  error
}

// Recorder is a Dialog that stores notifications and replays scripted prompt
// replies. It acknowledges every notification. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	prompts []Call
	replies []PromptReply
}

var _ Dialog = (*Recorder)(nil)

// NewRecorder returns a Recorder answering prompts with replies in order.
// Once exhausted, prompts report a cancellation.
func NewRecorder(replies ...PromptReply) *Recorder {
	return &Recorder{replies: replies}
}

func (r *Recorder) Alert(_ context.Context, message, title string) (bool, error) {
	return r.record(KindAlert, message, title)
}

func (r *Recorder) Success(_ context.Context, message, title string) (bool, error) {
	return r.record(KindSuccess, message, title)
}

func (r *Recorder) Error(_ context.Context, message, title string) (bool, error) {
	return r.record(KindError, message, title)
}

func (r *Recorder) PromptJSON(_ context.Context, message, title, _ string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, Call{Message: message, Title: title})
	if len(r.replies) == 0 {
		return "", false, nil
	}
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return reply.Text, reply.OK, reply.Err
}

// Calls returns the notifications recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Prompts returns the prompts shown so far.
func (r *Recorder) Prompts() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.prompts...)
}

func (r *Recorder) record(kind Kind, message, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Kind: kind, Message: message, Title: title})
	return true, nil
}
