package academic

import "github.com/pkg/errors"

// ListMessages returns the messages the user sent plus those addressed to
// them, either directly or via their role inbox.
func (svc *Service) ListMessages(userID string, role Role) []Message {
	doc := svc.store.Read()

	msgs := make([]Message, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		if m.SenderID == userID || m.ReceiverID == userID || (role != "" && m.ReceiverRole == role) {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// SendMessage appends an unread message with a generated id and timestamp.
func (svc *Service) SendMessage(msg Message) (Message, error) {
	doc := svc.store.Read()
	msg.ID = newID("msg")
	msg.Timestamp = nowISO()
	msg.Read = false
	doc.Messages = append(doc.Messages, msg)
	if err := svc.write(doc); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// MarkMessageRead flags the message as read.
func (svc *Service) MarkMessageRead(id string) error {
	doc := svc.store.Read()
	for i := range doc.Messages {
		if doc.Messages[i].ID == id {
			doc.Messages[i].Read = true
			return svc.write(doc)
		}
	}
	return errors.Wrapf(ErrNotFound, "message %s", id)
}
