package llm

import (
	"context"
	"sync"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

// Scripted is a Completer that replays canned responses in order.
// Tests use it to exercise completion-driven code without a live endpoint.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	Requests  [][]Message
}

// NewScripted creates a scripted completer that returns the given responses
// one per call, in order.
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

// PushError queues an error to be returned ahead of any remaining responses.
func (s *Scripted) PushError(err error) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = append(s.errs, err)

	return s
}

// Complete returns the next scripted response or queued error
func (s *Scripted) Complete(_ context.Context, messages []Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Requests = append(s.Requests, messages)

	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]

		return "", err
	}

	if len(s.responses) == 0 {
		return "", errors.New(errors.ErrTypeUpstream, "scripted completer exhausted")
	}

	resp := s.responses[0]
	s.responses = s.responses[1:]

	return resp, nil
}

// CallCount returns how many times Complete has been invoked
func (s *Scripted) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.Requests)
}
