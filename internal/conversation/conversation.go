// Package conversation owns the ordered message thread and the pending flag.
package conversation

import (
	"time"

	"github.com/csheth/plannie/internal/responder"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "USER"
	SenderAssistant Sender = "AI"
)

// Message is one turn in the conversation. Content never changes after the
// message is appended; progressive reveal is tracked by the view layer.
type Message struct {
	ID        string              `json:"id"`
	Seq       int64               `json:"seq"`
	Sender    Sender              `json:"sender"`
	Content   string              `json:"content"`
	Response  *responder.Response `json:"response,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// IsAssistant reports whether the message was produced by the responder.
func (m Message) IsAssistant() bool {
	return m.Sender == SenderAssistant
}

// NoInformation reports whether the attached response is the "nothing found" variant.
func (m Message) NoInformation() bool {
	return m.Response != nil && m.Response.NoInformation
}
