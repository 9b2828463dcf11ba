package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"batepapo/internal/domain"
	"batepapo/internal/domain/entities"
	"batepapo/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository stores one key per participant name, so FindAll
// returns participants sorted by name.
type ParticipantRepository struct {
	store *Store
}

type diskParticipant struct {
	Name       string `json:"name"`
	LastStatus int64  `json:"lastStatus"`
}

func participantKey(name string) []byte {
	return []byte(participantPrefix + name)
}

func (r *ParticipantRepository) Create(_ context.Context, participant *entities.Participant) error {
	value, err := encodeParticipant(*participant)
	if err != nil {
		return err
	}
	key := participantKey(participant.Name)
	err = r.store.update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return domain.ErrParticipantExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, value)
	})
	if err != nil && !errors.Is(err, domain.ErrParticipantExists) {
		return fmt.Errorf("create participant: %w", err)
	}
	return err
}

func (r *ParticipantRepository) FindAll(_ context.Context) ([]entities.Participant, error) {
	out := []entities.Participant{}
	err := r.store.scan(participantPrefix, func(value []byte) error {
		p, err := decodeParticipant(value)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}

func (r *ParticipantRepository) Touch(_ context.Context, name string, at time.Time) error {
	key := participantKey(name)
	value, err := encodeParticipant(entities.Participant{Name: name, LastStatus: at})
	if err != nil {
		return err
	}
	err = r.store.update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.ErrParticipantNotFound
			}
			return err
		}
		return txn.Set(key, value)
	})
	if err != nil && !errors.Is(err, domain.ErrParticipantNotFound) {
		return fmt.Errorf("touch participant: %w", err)
	}
	return err
}

func (r *ParticipantRepository) DeleteInactive(_ context.Context, name string, cutoff time.Time) (bool, error) {
	key := participantKey(name)
	removed := false
	err := r.store.update(func(txn *badger.Txn) error {
		removed = false
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var p entities.Participant
		if err := item.Value(func(value []byte) error {
			var decodeErr error
			p, decodeErr = decodeParticipant(value)
			return decodeErr
		}); err != nil {
			return err
		}
		if !p.LastStatus.Before(cutoff) {
			return nil
		}
		removed = true
		return txn.Delete(key)
	})
	if err != nil {
		return false, fmt.Errorf("delete participant: %w", err)
	}
	return removed, nil
}

func (r *ParticipantRepository) Ping(_ context.Context) error {
	if r.store.db.IsClosed() {
		return errors.New("badger: database is closed")
	}
	return nil
}

func encodeParticipant(p entities.Participant) ([]byte, error) {
	value, err := json.Marshal(diskParticipant{Name: p.Name, LastStatus: p.LastStatus.UnixNano()})
	if err != nil {
		return nil, fmt.Errorf("encode participant: %w", err)
	}
	return value, nil
}

func decodeParticipant(value []byte) (entities.Participant, error) {
	var d diskParticipant
	if err := json.Unmarshal(value, &d); err != nil {
		return entities.Participant{}, fmt.Errorf("decode participant: %w", err)
	}
	return entities.Participant{Name: d.Name, LastStatus: time.Unix(0, d.LastStatus).UTC()}, nil
}
