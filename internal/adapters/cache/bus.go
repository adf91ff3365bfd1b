package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DocumentsChannel = "kanso:documents"

type changeNotice struct {
	DocID  string `json:"doc_id"`
	Origin string `json:"origin"`
}

// SnapshotBus tells other instances sharing the same store that a document
// changed. Only the id travels; receivers reload the document themselves.
type SnapshotBus struct {
	rdb     *redis.Client
	channel string
	origin  string
	logger  *zap.Logger
}

func NewSnapshotBus(rdb *redis.Client, logger *zap.Logger) *SnapshotBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotBus{
		rdb:     rdb,
		channel: DocumentsChannel,
		origin:  uuid.NewString(),
		logger:  logger.Named("bus"),
	}
}

// Origin identifies this instance on the channel.
func (b *SnapshotBus) Origin() string {
	return b.origin
}

func (b *SnapshotBus) Notify(ctx context.Context, docID string) error {
	payload, err := b.encode(docID)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change for %s: %w", docID, err)
	}
	return nil
}

// Listen calls onChange for every change made by another instance. It blocks
// until ctx is done.
func (b *SnapshotBus) Listen(ctx context.Context, onChange func(ctx context.Context, docID string)) error {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	b.logger.Info("Listening for document changes", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if docID, remote := b.decode(msg.Payload); remote {
				onChange(ctx, docID)
			}
		}
	}
}

func (b *SnapshotBus) encode(docID string) (string, error) {
	data, err := json.Marshal(changeNotice{DocID: docID, Origin: b.origin})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode returns the document id of a notice sent by another instance.
func (b *SnapshotBus) decode(payload string) (string, bool) {
	var n changeNotice
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		b.logger.Warn("Ignoring malformed change notice", zap.Error(err))
		return "", false
	}
	if n.DocID == "" || n.Origin == b.origin {
		return "", false
	}
	return n.DocID, true
}
