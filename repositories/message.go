package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"traffic-lab/contract"
	"traffic-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

var _ contract.IMessageRepository = (*MessageRepository)(nil)

const messagePrefix = "msg:"

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("%s%s:%s", messagePrefix, paddedTime(message.CreatedAt), message.ID)
	return m.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, []byte(key), message)
	})
}

// LatestMessages walks the keys backwards from the newest one and returns
// the last limit messages in chronological order.
func (m MessageRepository) LatestMessages(limit int) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Let's go to the newest position msg:9999999999999999999
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(messages) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", limit))
				break
			}
			var message domain.Message
			if err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			}); err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Reverse(messages), nil
}
