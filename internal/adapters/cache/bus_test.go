package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBus_Decode(t *testing.T) {
	bus := NewSnapshotBus(nil, nil)
	other := NewSnapshotBus(nil, nil)
	require.NotEqual(t, bus.Origin(), other.Origin())

	fromOther, err := other.encode("user_default")
	require.NoError(t, err)
	fromSelf, err := bus.encode("user_default")
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantID  string
		wantOK  bool
	}{
		{name: "Success: Remote notice", payload: fromOther, wantID: "user_default", wantOK: true},
		{name: "Edge Case: Own notice is ignored", payload: fromSelf},
		{name: "Error: Malformed payload", payload: "{nope"},
		{name: "Error: Missing document id", payload: `{"origin":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := bus.decode(tt.payload)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSnapshotBus_Integration(t *testing.T) {
	rdbA, err := NewRedisClient(testConfig())
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdbA.Close()
	rdbB, err := NewRedisClient(testConfig())
	require.NoError(t, err)
	defer rdbB.Close()

	a := NewSnapshotBus(rdbA, nil)
	b := NewSnapshotBus(rdbB, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 4)
	listening := make(chan error, 1)
	go func() {
		listening <- b.Listen(ctx, func(_ context.Context, docID string) { received <- docID })
	}()

	// the subscription is asynchronous; keep notifying until it lands
	require.Eventually(t, func() bool {
		if err := a.Notify(ctx, "user_default"); err != nil {
			return false
		}
		select {
		case id := <-received:
			return id == "user_default"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	for len(received) > 0 {
		<-received
	}

	require.NoError(t, b.Notify(ctx, "user_default"))
	select {
	case id := <-received:
		t.Fatalf("own notice delivered: %s", id)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-listening)
}
