package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growdash/internal/shared/testutil"
	"growdash/pkg/contracts/events"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	hub := NewHub(logger, nil)
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func registerTestClient(t *testing.T, hub *Hub) (*Client, *MockConnection) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	conn := NewMockConnection()
	client := NewClientWithConnection(hub, conn, logger)
	hub.Register(client)

	// Wait for the register to be processed
	require.Eventually(t, func() bool {
		return hub.ClientCount() >= 1
	}, time.Second, 5*time.Millisecond)

	return client, conn
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := newTestHub(t)

	client, _ := registerTestClient(t, hub)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHubSendsConnectionStatus(t *testing.T) {
	hub := newTestHub(t)
	client, _ := registerTestClient(t, hub)

	select {
	case data := <-client.send:
		var msg events.WebSocketMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, events.MessageTypeConnect, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("no connection message received")
	}
}

func TestBroadcastDataReloaded(t *testing.T) {
	hub := newTestHub(t)
	client, _ := registerTestClient(t, hub)

	// Drain the connection status message first
	<-client.send

	loadedAt := time.Now().Truncate(time.Second)
	hub.BroadcastDataReloaded(events.DataReloaded{
		EnvironmentRows: 6,
		GrowthRows:      5,
		Schools:         4,
		LoadedAt:        loadedAt,
	})

	select {
	case data := <-client.send:
		var msg events.WebSocketMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, events.MessageTypeDataReloaded, msg.Type)
		assert.NotEmpty(t, msg.ID)

		payload, err := json.Marshal(msg.Data)
		require.NoError(t, err)

		var reloaded events.DataReloaded
		require.NoError(t, json.Unmarshal(payload, &reloaded))
		assert.Equal(t, 6, reloaded.EnvironmentRows)
		assert.Equal(t, 4, reloaded.Schools)
	case <-time.After(time.Second):
		t.Fatal("no reload message received")
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := newTestHub(t)

	c1, _ := registerTestClient(t, hub)
	c2, _ := registerTestClient(t, hub)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 2
	}, time.Second, 5*time.Millisecond)

	<-c1.send
	<-c2.send

	hub.Broadcast([]byte(`{"type":"data:reloaded"}`))

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.send:
			assert.Contains(t, string(data), "data:reloaded")
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHubStopClosesClients(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	hub := NewHub(logger, nil)
	hub.Start()

	client, _ := registerTestClient(t, hub)
	<-client.send

	hub.Stop()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-client.send:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
