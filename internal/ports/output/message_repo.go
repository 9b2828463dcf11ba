//go:generate go run go.uber.org/mock/mockgen -source=message_repo.go -destination=../../mocks/mock_message_repo.go -package=mocks
package output

import (
	"context"

	"batepapo/internal/domain/entities"
)

type MessageRepository interface {
	Append(ctx context.Context, message *entities.Message) error
	// FindAll returns the whole log in insertion order.
	FindAll(ctx context.Context) ([]entities.Message, error)
}
