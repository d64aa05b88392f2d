package ws

import "chat-relay/domain"

// roomFrame is the outbound shape of a room broadcast.
type roomFrame struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// personalFrame is the outbound shape of a personal delivery, sent to
// the recipient's sessions and echoed back to the sender.
type personalFrame struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// personalRequest is the inbound shape on the personal endpoint.
// Text may be empty; the recipient may not.
type personalRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text"`
}

func toRoomFrame(m domain.ChatMessage) roomFrame {
	return roomFrame{
		Sender:    m.Sender,
		Text:      m.Text,
		Timestamp: m.At.UnixMilli(),
	}
}

func toPersonalFrame(m domain.PersonalMessage) personalFrame {
	return personalFrame{
		From:      m.Sender,
		To:        m.Recipient,
		Text:      m.Text,
		Timestamp: m.At.UnixMilli(),
	}
}
