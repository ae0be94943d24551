package events_test

import (
	"context"
	"encoding/json"
	"testing"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/atelier/internal/events"
)

type fakeWriter struct {
	messages []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	pub := events.NewKafkaPublisherWithWriter(writer)

	payload := map[string]string{"number": "18233"}
	require.NoError(t, pub.Publish(context.Background(), events.ShipmentNew, "18233", payload))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]

	assert.Equal(t, []byte("18233"), msg.Key)

	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event", msg.Headers[0].Key)
	assert.Equal(t, []byte(events.ShipmentNew), msg.Headers[0].Value)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestKafkaPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	pub := events.NewKafkaPublisherWithWriter(writer)

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
}
