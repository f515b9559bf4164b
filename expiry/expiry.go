package expiry

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"

	"github.com/tinkernels/rbtree"
)

const (
	// TTL bounds for scheduling DNS responses.
	maxTTL   = uint32(3600)
	emptyTTL = uint32(60)

	queryFormatString string = "[OPCODE:%v][RD:%v][CD:%v][QName:%v][QType:%v][QClass:%v]"
)

// Options specifies options to be used when instantiating a schedule
type Options struct {
	// MaxEntries caps the number of scheduled names, 0 means no cap.
	MaxEntries int
	Logger     *logrus.Logger
}

// Schedule keeps names ordered by deadline. The red-black tree indexes the
// deadlines, so several names may share one. Safe for concurrent use.
type Schedule struct {
	lock    sync.Mutex
	index   *rbtree.Tree
	entries map[string]entry
	names   map[rbtree.Handle]string
	log     *logrus.Entry
}

type entry struct {
	handle   rbtree.Handle
	expireAt int64
}

// NewSchedule creates an empty schedule.
func NewSchedule(opts *Options) *Schedule {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = rbtree.Log
	}
	return &Schedule{
		index:   rbtree.NewWithOptions(&rbtree.Options{MaxNodes: opts.MaxEntries, Logger: logger}),
		entries: make(map[string]entry),
		names:   make(map[rbtree.Handle]string),
		log:     logger.WithField("component", "expiry"),
	}
}

// Add schedules name to expire at expireAt, unix seconds. A name already
// scheduled is moved to the new deadline.
func (s *Schedule) Add(name string, expireAt int64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if old, ok := s.entries[name]; ok {
		s.drop(name, old)
	}
	h, err := s.index.Insert(rbtree.Key(expireAt))
	if err != nil {
		return fmt.Errorf("can't schedule %v: %w", name, err)
	}
	s.entries[name] = entry{handle: h, expireAt: expireAt}
	s.names[h] = name
	s.log.Debugf("scheduled %v at %v, %v entries", name, expireAt, s.index.Len())
	return nil
}

// Remove unschedules name and reports whether it was scheduled.
func (s *Schedule) Remove(name string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	e, ok := s.entries[name]
	if !ok {
		return false
	}
	s.drop(name, e)
	return true
}

// Deadline returns the deadline of name.
func (s *Schedule) Deadline(name string) (int64, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	e, ok := s.entries[name]
	return e.expireAt, ok
}

// Next returns the earliest deadline, false when nothing is scheduled.
func (s *Schedule) Next() (int64, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	h, found := s.index.Min()
	if !found {
		return 0, false
	}
	k, err := s.index.Key(h)
	if err != nil {
		return 0, false
	}
	return int64(k), true
}

// Expire removes every name whose deadline is before now and returns them
// earliest first.
func (s *Schedule) Expire(now int64) []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	var expired []string
	for h, found := s.index.Min(); found; h, found = s.index.Min() {
		k, err := s.index.Key(h)
		if err != nil || int64(k) >= now {
			break
		}
		name := s.names[h]
		s.drop(name, s.entries[name])
		expired = append(expired, name)
	}
	if len(expired) > 0 {
		s.log.Infof("expired %v entries, %v left", len(expired), s.index.Len())
	}
	return expired
}

// Len returns the number of scheduled names.
func (s *Schedule) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.index.Len()
}

// AddMsg schedules a DNS response under KeyFromMsg(msg), expiring after
// the smallest TTL it carries, and returns the key.
func (s *Schedule) AddMsg(msg *dns.Msg, now int64) (string, error) {
	if msg == nil || len(msg.Question) == 0 {
		return "", fmt.Errorf("dns message has no question")
	}
	key := KeyFromMsg(msg)
	return key, s.Add(key, now+int64(TTLFromMsg(msg)))
}

func (s *Schedule) drop(name string, e entry) {
	if err := s.index.Erase(e.handle); err != nil {
		s.log.Errorf("can't unschedule %v: %v", name, err)
	}
	delete(s.names, e.handle)
	delete(s.entries, name)
}

// TTLFromMsg returns the smallest TTL of the answer and authority records,
// capped at one hour. Responses without records get 60 seconds.
func TTLFromMsg(msg *dns.Msg) uint32 {
	if msg == nil {
		return 0
	}
	if len(msg.Answer) == 0 && len(msg.Ns) == 0 {
		return emptyTTL
	}
	minTTL := maxTTL
	for _, rs := range [][]dns.RR{msg.Answer, msg.Ns} {
		for _, r := range rs {
			if ttl := r.Header().Ttl; ttl < minTTL {
				minTTL = ttl
			}
		}
	}
	return minTTL
}

// KeyFromMsg returns the schedule key of the first question of msg.
func KeyFromMsg(msg *dns.Msg) string {
	if msg == nil || len(msg.Question) == 0 {
		return ""
	}
	q := msg.Question[0]
	return fmt.Sprintf(queryFormatString,
		msg.Opcode, msg.RecursionDesired, msg.CheckingDisabled,
		dns.CanonicalName(q.Name), q.Qtype, q.Qclass)
}
