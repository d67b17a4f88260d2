//go:build integration

package realtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRedis(t *testing.T) *RedisBroker {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	var broker *RedisBroker
	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		b, err := NewRedisBroker(addr, "", 0)
		if err != nil {
			return err
		}
		broker = b
		return nil
	}))
	t.Cleanup(func() { _ = broker.Close() })
	return broker
}

func TestRedisBrokerRoundTrip(t *testing.T) {
	broker := startRedis(t)
	ctx := context.Background()

	got := make(chan Event, 1)
	sub, err := broker.Subscribe(ctx, "team-messages-x", func(e Event) { got <- e })
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, "team-messages-x", EventMessage, map[string]string{"id": "1"}))

	select {
	case e := <-got:
		assert.Equal(t, "team-messages-x", e.Channel)
		assert.Equal(t, EventMessage, e.Type)
		assert.JSONEq(t, `{"id":"1"}`, string(e.Payload))
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}

	require.NoError(t, sub.Close())
}

func TestRedisBrokerWithManager(t *testing.T) {
	broker := startRedis(t)
	ctx := context.Background()

	got := make(chan Event, 4)
	m := NewSubscriptionManager(broker, func(e Event) { got <- e })
	require.NoError(t, m.Sync(ctx, []string{"a", "b"}))
	require.NoError(t, m.Sync(ctx, []string{"b"}))

	require.NoError(t, broker.Publish(ctx, "a", EventMessage, 1))
	require.NoError(t, broker.Publish(ctx, "b", EventMessage, 2))

	select {
	case e := <-got:
		assert.Equal(t, "b", e.Channel)
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}
	require.NoError(t, m.Close())
}
