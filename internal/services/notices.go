package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"luxemarket/internal/metrics"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot toast shown on the session's next page render.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Notices queues toasts per session until they are drained.
type Notices struct {
	mu      sync.Mutex
	store   *cache.Cache
	metrics *metrics.Metrics
}

func NewNotices(ttl time.Duration, m *metrics.Metrics) *Notices {
	return &Notices{store: cache.New(ttl, time.Minute), metrics: m}
}

func (n *Notices) Push(sessionID string, kind NoticeKind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var queue []Notice
	if v, ok := n.store.Get(sessionID); ok {
		queue = v.([]Notice)
	}
	n.store.SetDefault(sessionID, append(queue, Notice{Kind: kind, Text: text}))
	n.metrics.Notice(string(kind))
}

// Drain returns and forgets the session's queued notices.
func (n *Notices) Drain(sessionID string) []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	v, ok := n.store.Get(sessionID)
	if !ok {
		return nil
	}
	n.store.Delete(sessionID)
	return v.([]Notice)
}
