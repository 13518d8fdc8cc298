package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"laptek/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func receive(t *testing.T, ch <-chan []byte) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-ch:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil, false
	}
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	hub.Start(ctx)

	a := &Client{ID: "a", Send: make(chan []byte, 1)}
	b := &Client{ID: "b", Send: make(chan []byte, 1)}
	hub.Register(a)
	hub.Register(b)

	require.NoError(t, hub.Publish(entity.ProductEvent{
		Type:    entity.ProductAdded,
		Product: &entity.Product{ID: "1", Name: "Dell XPS 13 Plus", Price: 1499},
	}))

	for _, c := range []*Client{a, b} {
		raw, ok := receive(t, c.Send)
		require.True(t, ok)

		var msg struct {
			Type string              `json:"type"`
			Data entity.ProductEvent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageTypeCatalogEvent, msg.Type)
		assert.Equal(t, entity.ProductAdded, msg.Data.Type)
		assert.Equal(t, "Dell XPS 13 Plus", msg.Data.Product.Name)
	}
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(a)
	_, ok := receive(t, a.Send)
	assert.False(t, ok)

	cancel()
	<-hub.Done()
	_, ok = receive(t, b.Send)
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_DropsSlowConsumer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	hub.Start(ctx)
	defer func() {
		cancel()
		<-hub.Done()
	}()

	slow := &Client{ID: "slow", Send: make(chan []byte)}
	hub.Register(slow)

	require.NoError(t, hub.Publish(entity.ProductEvent{Type: entity.ProductRemoved, Product: &entity.Product{ID: "9"}}))

	_, ok := receive(t, slow.Send)
	assert.False(t, ok)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_AfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	hub.Start(ctx)
	cancel()
	<-hub.Done()

	late := &Client{ID: "late", Send: make(chan []byte, 1)}
	hub.Register(late)
	hub.Unregister(late)
	require.NoError(t, hub.Publish(entity.ProductEvent{Type: entity.ProductModified}))

	_, ok := receive(t, late.Send)
	assert.False(t, ok)
}
