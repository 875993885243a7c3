package kafka

import (
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	t.Run("plaintext", func(t *testing.T) {
		p, err := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
		assert.Nil(t, p.transport.TLS)
		assert.Nil(t, p.transport.SASL)
		assert.Empty(t, p.writers)
	})

	t.Run("tls with scram", func(t *testing.T) {
		p, err := NewProducer(Config{
			Brokers:       []string{"kafka:9093"},
			TLS:           true,
			SASLEnabled:   true,
			SASLMechanism: "SCRAM-SHA-512",
			SASLUsername:  "svc",
			SASLPassword:  "secret",
		})
		require.NoError(t, err)
		require.NotNil(t, p.transport.TLS)
		require.NotNil(t, p.transport.SASL)
		assert.Equal(t, "SCRAM-SHA-512", p.transport.SASL.Name())
	})

	t.Run("unknown mechanism", func(t *testing.T) {
		_, err := NewProducer(Config{SASLEnabled: true, SASLMechanism: "GSSAPI"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GSSAPI")
	})
}

func TestProducer_WriterPerTopic(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	require.NoError(t, err)

	a := p.writer("decisioning.events")
	b := p.writer("decisioning.events")
	c := p.writer("other")
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, kafkago.RequireAll, a.RequiredAcks)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestMessageConversion(t *testing.T) {
	out := toKafkaMessages([]Message{{
		Key:     []byte("decision-1"),
		Value:   []byte(`{"event_type":"decisioning.decision.evaluated"}`),
		Headers: map[string]string{"event_type": "decisioning.decision.evaluated"},
	}})
	require.Len(t, out, 1)
	assert.Equal(t, []byte("decision-1"), out[0].Key)
	require.Len(t, out[0].Headers, 1)

	back := fromKafkaMessage(out[0])
	assert.Equal(t, "decisioning.decision.evaluated", back.Headers["event_type"])
	assert.Equal(t, out[0].Value, back.Value)
}
