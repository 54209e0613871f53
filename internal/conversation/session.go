package conversation

import (
	"sync"

	"github.com/polkiloo/procurebot/internal/domain/model"
)

// FlowKind distinguishes the two state machines sharing the session store,
// so order-creation and cancellation state can never bleed into each other.
type FlowKind int

const (
	FlowOrder FlowKind = iota + 1
	FlowCancel
)

// Stage is the current position inside a flow.
type Stage int

const (
	StageArticle Stage = iota + 1
	StageQuantity
	StageUrgency
	StageCostCenter
	StageAttachment
	StageConfirm

	// StageSelecting is the single active state of the cancellation flow.
	StageSelecting
)

// Session is the per-identity scratch state of an active flow. It is
// ephemeral: discarded on submit, restart and abort, and lost on restart
// of the process.
type Session struct {
	Flow    FlowKind
	Stage   Stage
	Draft   model.Draft
	Pending []model.Request // cached pending list of the cancellation flow
}

// SessionStore maps identities to their active session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[model.Identity]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[model.Identity]*Session)}
}

// Get returns the identity's session, if any.
func (s *SessionStore) Get(identity model.Identity) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[identity]
	return session, ok
}

// Put installs or replaces the identity's session.
func (s *SessionStore) Put(identity model.Identity, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[identity] = session
}

// Delete tears the session down on terminal transitions.
func (s *SessionStore) Delete(identity model.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, identity)
}
