//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../../mocks/mock_message_usecase.go -package=mocks
package input

import (
	"context"

	"batepapo/internal/domain/entities"
)

// PostMessage is a user-authored message as received from a client.
type PostMessage struct {
	From string
	To   string
	Text string
	Type string
}

// MessageUseCase is the message log as seen by clients.
type MessageUseCase interface {
	Post(ctx context.Context, msg PostMessage) error
	// List returns the messages visible to user, keeping only the trailing
	// limit of them when limit is not nil.
	List(ctx context.Context, user string, limit *int) ([]entities.Message, error)
}

// StatusLog appends the system-generated arrival and departure messages.
type StatusLog interface {
	AppendArrival(ctx context.Context, name string) error
	AppendDeparture(ctx context.Context, name string) error
}
