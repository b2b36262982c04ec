package events

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/logger"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (s *stubWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed = true
	return nil
}

func TestKafkaPublisherWritesKeyedJSON(t *testing.T) {
	writer := &stubWriter{}
	pub := &KafkaPublisher{writer: writer, logger: logger.Nop()}

	err := pub.Publish(context.Background(), Event{
		Type:      TypeProductCreated,
		RunID:     "run-1",
		ProductID: "p1",
		Data:      map[string]interface{}{"asset_id": "a1"},
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("run-1"), writer.messages[0].Key)

	event, err := Decode(writer.messages[0].Value)
	require.NoError(t, err)
	assert.Equal(t, TypeProductCreated, event.Type)
	assert.Equal(t, "p1", event.ProductID)
	assert.Equal(t, "a1", event.Data["asset_id"])
	assert.False(t, event.Timestamp.IsZero())

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisherReportsWriteError(t *testing.T) {
	pub := &KafkaPublisher{writer: &stubWriter{err: errors.New("broker down")}, logger: logger.Nop()}
	err := pub.Publish(context.Background(), Event{Type: TypePipelineFailed, RunID: "run-2"})
	assert.Error(t, err)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode([]byte("{"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"run_id":"x"}`))
	assert.Error(t, err)
}
