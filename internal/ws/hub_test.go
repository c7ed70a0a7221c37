package ws

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRefresh(t *testing.T) {
	msg, err := EncodeRefresh("issue_committed")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"refresh","reason":"issue_committed"}`, string(msg))
}

func TestHub_RefreshQueuesBroadcast(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	hub := NewHub(log)

	hub.Refresh("product_created")

	select {
	case msg := <-hub.Broadcast:
		assert.JSONEq(t, `{"type":"refresh","reason":"product_created"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("refresh was not queued")
	}
}
