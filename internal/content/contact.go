package content

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/validation"
)

// ContactMessage is a message submitted through the contact form. Nothing
// downstream consumes it yet; the inbox just keeps it for the process
// lifetime.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

type Inbox struct {
	mu   sync.Mutex
	msgs []ContactMessage
}

func NewInbox() *Inbox {
	return &Inbox{}
}

func (i *Inbox) Submit(msg ContactMessage) (*ContactMessage, error) {
	if verr := validateContact(msg); verr != nil {
		return nil, verr
	}

	msg.ID = uuid.New()
	msg.ReceivedAt = time.Now()

	i.mu.Lock()
	i.msgs = append(i.msgs, msg)
	i.mu.Unlock()

	return &msg, nil
}

func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.msgs)
}

func validateContact(msg ContactMessage) error {
	if verr := validation.MinLength("name", msg.Name, 3); verr != nil {
		return verr
	}
	if verr := validation.Email("email", msg.Email); verr != nil {
		return verr
	}
	if verr := validation.Required("subject", msg.Subject); verr != nil {
		return verr
	}
	if verr := validation.MinLength("message", msg.Message, 10); verr != nil {
		return verr
	}
	return nil
}
