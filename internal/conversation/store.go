package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/csheth/plannie/internal/responder"
)

// Store is the in-memory message sequence plus the "reply pending" flag.
// It is append-only apart from Reset. Store is not safe for concurrent use;
// the program loop is its only writer.
type Store struct {
	messages []Message
	pending  bool
	seq      int64
	epoch    uint64

	now   func() time.Time
	newID func() string
}

// NewStore returns an empty conversation.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: newMessageID,
	}
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Append adds a message to the end of the thread and returns it. A non-nil
// response is copied so later changes by the caller cannot leak in.
func (s *Store) Append(sender Sender, content string, resp *responder.Response) Message {
	s.seq++
	msg := Message{
		ID:        s.newID(),
		Seq:       s.seq,
		Sender:    sender,
		Content:   content,
		CreatedAt: s.now(),
	}
	if resp != nil {
		clone := resp.Clone()
		msg.Response = &clone
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a snapshot of the thread in append order.
func (s *Store) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Len reports how many messages the thread holds.
func (s *Store) Len() int {
	return len(s.messages)
}

// Empty reports whether the thread has no messages.
func (s *Store) Empty() bool {
	return len(s.messages) == 0
}

// Last returns the most recent message.
func (s *Store) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// LatestAssistant returns the most recent assistant message.
func (s *Store) LatestAssistant() (Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].IsAssistant() {
			return s.messages[i], true
		}
	}
	return Message{}, false
}

// Find looks a message up by id.
func (s *Store) Find(id string) (Message, bool) {
	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// Pending reports whether a responder call is outstanding.
func (s *Store) Pending() bool {
	return s.pending
}

// SetPending toggles the pending flag.
func (s *Store) SetPending(pending bool) {
	s.pending = pending
}

// Epoch increments on every effective reset. Work started under an older
// epoch must not write into the store.
func (s *Store) Epoch() uint64 {
	return s.epoch
}

// Reset clears the thread and the pending flag. It reports whether anything
// changed; resetting an empty, idle store is a no-op.
func (s *Store) Reset() bool {
	if len(s.messages) == 0 && !s.pending {
		return false
	}
	s.messages = nil
	s.pending = false
	s.epoch++
	return true
}
