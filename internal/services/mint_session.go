package services

import (
	"sync"
	"time"

	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle mint session is kept.
const DefaultSessionTTL = time.Hour

// MintSession is one operator's pass through the mint workflow. Sessions
// live in memory only.
type MintSession struct {
	mu sync.Mutex

	id        string
	product   business.ProductConfig
	state     business.MintState
	quantity  int
	summary   *business.CostSummary
	estimate  *business.GasEstimate
	result    *business.MintResult
	lastError string
	updatedAt time.Time
}

// view must be called with s.mu held.
func (s *MintSession) view() *business.MintSessionView {
	return &business.MintSessionView{
		ID:        s.id,
		ProductID: s.product.ProductID,
		State:     s.state,
		Quantity:  s.quantity,
		Summary:   s.summary,
		Estimate:  s.estimate,
		Result:    s.result,
		LastError: s.lastError,
		UpdatedAt: s.updatedAt,
	}
}

// reset returns the session to Configuring with quantity 1.
func (s *MintSession) reset(now time.Time) {
	s.state = business.MintConfiguring
	s.quantity = 1
	s.summary = nil
	s.estimate = nil
	s.result = nil
	s.lastError = ""
	s.updatedAt = now
}

// SessionStore holds mint sessions keyed by a random id.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*MintSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*MintSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (st *SessionStore) create(product business.ProductConfig) *MintSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictLocked()

	sess := &MintSession{id: uuid.NewString(), product: product}
	sess.reset(st.now())
	st.sessions[sess.id] = sess
	return sess
}

func (st *SessionStore) remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *SessionStore) get(id string) (*MintSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictLocked()

	sess, ok := st.sessions[id]
	return sess, ok
}

// evictLocked drops idle sessions. A session that is submitting is kept
// regardless of age.
func (st *SessionStore) evictLocked() {
	cutoff := st.now().Add(-st.ttl)
	for id, sess := range st.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.state != business.MintSubmitting && sess.updatedAt.Before(cutoff) {
			delete(st.sessions, id)
		}
		sess.mu.Unlock()
	}
}

// Len is the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
