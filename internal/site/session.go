package site

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/navigation"
)

// Session is one reader's navigation over a Site. Loads may overlap; only
// the most recently requested load is allowed to change navigation.
type Session struct {
	id   string
	site *Site

	latest atomic.Uint64

	mu  sync.Mutex
	nav *navigation.State
}

// NewSession creates a session and registers it with the site. The first
// document of the tree is loaded into it when one exists; a failure to load
// it is logged and leaves the session without a current document.
func (s *Site) NewSession(ctx context.Context) (*Session, *Document) {
	sess := &Session{
		id:   uuid.NewString(),
		site: s,
		nav:  navigation.New(s.tree),
	}
	s.sessions.Add(sess.id, sess)
	s.logger.Debug("session created", "session", sess.id)

	first, ok := s.tree.FirstDocument()
	if !ok {
		return sess, nil
	}
	doc, err := sess.Load(ctx, first.ID)
	if err != nil {
		s.logger.Warn("default document failed to load", "session", sess.id, "doc", first.ID, "error", err)
		return sess, nil
	}
	return sess, doc
}

// Session returns the session with the given id.
func (s *Site) Session(id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, &SessionNotFoundError{ID: id}
	}
	return sess, nil
}

// ID returns the session id.
func (sess *Session) ID() string { return sess.id }

// Load fetches and renders id, then makes it the current document. An
// unknown id fails without changing anything. A failed fetch leaves
// navigation untouched. If another Load started after this one, the fetched
// content is still indexed but ErrSuperseded is returned and navigation is
// left to the newer load.
func (sess *Session) Load(ctx context.Context, id string) (*Document, error) {
	if !sess.site.tree.Contains(id) {
		return nil, &doctree.DocumentNotFoundError{ID: id}
	}
	ticket := sess.latest.Add(1)

	doc, err := sess.site.Document(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.latest.Load() != ticket {
		return nil, ErrSuperseded
	}
	if err := sess.nav.Activate(id); err != nil {
		return nil, err
	}
	doc.State = sess.nav.Snapshot()
	return doc, nil
}

// Toggle flips the expansion of id. Unknown ids are rejected.
func (sess *Session) Toggle(id string) (navigation.Snapshot, error) {
	if !sess.site.tree.Contains(id) {
		return navigation.Snapshot{}, &doctree.DocumentNotFoundError{ID: id}
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.nav.ToggleExpansion(id)
	return sess.nav.Snapshot(), nil
}

// Snapshot returns a copy of the navigation state.
func (sess *Session) Snapshot() navigation.Snapshot {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.nav.Snapshot()
}
