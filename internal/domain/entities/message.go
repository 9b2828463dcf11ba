package entities

import "github.com/google/uuid"

// BroadcastRecipient is the "to" value addressing every participant.
const BroadcastRecipient = "Todos"

type MessageType string

const (
	MessageTypeMessage        MessageType = "message"
	MessageTypePrivateMessage MessageType = "private_message"
	MessageTypeStatus         MessageType = "status"
)

// Status texts are part of the log contract and do not follow LOCALE.
const (
	StatusJoinText  = "entra na sala..."
	StatusLeaveText = "sai da sala..."
)

// Message is an immutable entry of the chat log.
// Time is the local wall clock formatted as HH:mm:ss.
type Message struct {
	ID   uuid.UUID
	From string
	To   string
	Text string
	Type MessageType
	Time string
}

// VisibleTo reports whether user may read m: broadcasts, messages addressed
// to user and messages sent by user.
func (m Message) VisibleTo(user string) bool {
	return m.To == BroadcastRecipient || m.To == user || m.From == user
}
