package queue

import (
	"testing"

	"github.com/rigforge/internal/config"

	"github.com/stretchr/testify/require"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	require.NoError(t, err)
	require.False(t, client.Enabled())
	require.NoError(t, client.EnqueueOrderStatusChanged(OrderStatusChangedPayload{OrderID: 1}))
	require.NoError(t, client.EnqueueProductDeactivated(ProductDeactivatedPayload{ProductID: 1}))
	require.NoError(t, client.Close())

	var nilClient *Client
	require.False(t, nilClient.Enabled())
}

func TestTaskPayloadRoundTrip(t *testing.T) {
	task, err := NewOrderStatusChangedTask(OrderStatusChangedPayload{OrderID: 9, FromStatus: "pending", ToStatus: "shipped"})
	require.NoError(t, err)
	require.Equal(t, TaskOrderStatusChanged, task.Type())

	payload, err := ParseOrderStatusChangedPayload(task.Payload())
	require.NoError(t, err)
	require.Equal(t, uint(9), payload.OrderID)
	require.Equal(t, "shipped", payload.ToStatus)

	task, err = NewProductDeactivatedTask(ProductDeactivatedPayload{ProductID: 3})
	require.NoError(t, err)
	product, err := ParseProductDeactivatedPayload(task.Payload())
	require.NoError(t, err)
	require.Equal(t, uint(3), product.ProductID)
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	require.Equal(t, "127.0.0.1:6379", opt.Addr)
	require.Equal(t, 5, cfg.Concurrency)
	require.Equal(t, 2, cfg.Queues[CriticalQueue])

	opt, cfg = BuildServerConfig(&config.QueueConfig{Host: "redis", Port: 6380, DB: 2, Concurrency: 9, Queues: map[string]int{"default": 1}})
	require.Equal(t, "redis:6380", opt.Addr)
	require.Equal(t, 2, opt.DB)
	require.Equal(t, 9, cfg.Concurrency)
	require.Len(t, cfg.Queues, 1)
}
