package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishAll(t *testing.T, ctx context.Context, client *Client, ids []string) error {
	t.Helper()

	if client.redis == nil {
		return errors.New("redis not initialized")
	}

	p := NewPublisher(client, PublisherConfig{Timeout: 1000})
	for _, id := range ids {
		if err := p.Publish(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func TestMessages_SingleAndMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []string
	}{
		{"single photo", []string{"p1"}},
		{"multiple photos", []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uri, terminate := setupRedis(t)
			defer terminate()

			client, err := NewClient(Config{URI: uri, StreamName: StreamName, GroupName: GroupName})
			require.NoError(t, err)
			defer client.Close()

			require.NoError(t, publishAll(t, context.Background(), client, tt.ids))

			receiver := NewReceiver(client)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			ch, err := receiver.Messages(ctx, Consumer)
			require.NoError(t, err)

			received := make([]string, 0, len(tt.ids))
			for range tt.ids {
				msg := <-ch
				assert.NotEmpty(t, msg.ID())
				received = append(received, msg.Body())
				assert.NoError(t, msg.Ack())
			}

			assert.Equal(t, tt.ids, received)
		})
	}
}

func TestMessages_ConcurrentConsumers(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client, err := NewClient(Config{URI: uri, StreamName: StreamName, GroupName: GroupName})
	require.NoError(t, err)
	defer client.Close()

	total := 50
	workers := 5
	ids := make([]string, total)
	for i := range ids {
		ids[i] = fmt.Sprintf("photo-%d", i)
	}

	require.NoError(t, publishAll(t, context.Background(), client, ids))

	received := make(chan string, total)
	var wg sync.WaitGroup
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	receiver := NewReceiver(client)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			ch, err := receiver.Messages(ctx, fmt.Sprintf("consumer-%d", id))
			if err != nil {
				return
			}
			for msg := range ch {
				received <- msg.Body()
				_ = msg.Ack()
			}
		}(i)
	}

	wg.Wait()
	close(received)

	seen := make(map[string]bool)
	for id := range received {
		assert.False(t, seen[id], "duplicate message received: %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, total)
}

func TestMessages_ContextCancel(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client, err := NewClient(Config{URI: uri, StreamName: StreamName, GroupName: GroupName})
	require.NoError(t, err)
	defer client.Close()

	receiver := NewReceiver(client)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	ch, err := receiver.Messages(ctx, "consumer-cancel")
	require.NoError(t, err)
	_, ok := <-ch
	assert.False(t, ok, "expected channel to be closed due to context cancel")
}

func TestMessages_InvalidClient(t *testing.T) {
	t.Parallel()

	receiver := &Receiver{}
	ch, err := receiver.Messages(context.Background(), "invalid-consumer")
	assert.Nil(t, ch)
	assert.Error(t, err)
}
