package network

import (
	"sync"
	"time"

	"github.com/automoto/gggames/shared/messages"
)

const requestLogSize = 64

// RequestRecord stores a sent action request and when it left the client.
type RequestRecord struct {
	Request messages.ActionRequest
	SentAt  time.Time
}

// RequestLog is a ring buffer of recent action requests. The server echoes
// the last sequence it processed in NetPlayerState.LastRequest, which lets
// the client measure request round trips and count requests in flight.
type RequestLog struct {
	mu        sync.Mutex
	history   [requestLogSize]RequestRecord
	nextSeq   uint32
	lastAcked uint32
	lastRTT   time.Duration
}

func NewRequestLog() *RequestLog {
	return &RequestLog{nextSeq: 1}
}

// Store saves a sent request.
func (l *RequestLog) Store(req messages.ActionRequest, sentAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := req.Sequence % requestLogSize
	l.history[idx] = RequestRecord{Request: req, SentAt: sentAt}
	l.nextSeq = req.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not
// found or if the slot has been overwritten.
func (l *RequestLog) Get(seq uint32) (RequestRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get(seq)
}

func (l *RequestLog) get(seq uint32) (RequestRecord, bool) {
	record := l.history[seq%requestLogSize]
	if record.Request.Sequence != seq || record.SentAt.IsZero() {
		return RequestRecord{}, false
	}
	return record, true
}

// Acknowledge marks everything up to seq as processed by the server and
// updates the round trip time from the newest acknowledged request.
func (l *RequestLog) Acknowledge(seq uint32, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq <= l.lastAcked {
		return
	}
	l.lastAcked = seq
	if record, ok := l.get(seq); ok {
		l.lastRTT = now.Sub(record.SentAt)
	}
}

// Pending returns the requests the server has not confirmed yet.
func (l *RequestLog) Pending() []RequestRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var results []RequestRecord
	for seq := l.lastAcked + 1; seq < l.nextSeq; seq++ {
		if record, ok := l.get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// RoundTrip is the latency of the last acknowledged request.
func (l *RequestLog) RoundTrip() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastRTT
}
