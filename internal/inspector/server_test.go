package inspector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagewire/internal/resolve"
)

func newTestServer(t *testing.T, query QueryFunc) (*Server, *httptest.Server) {
	t.Helper()
	s := New(0, query)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestWSClientReceivesSnapshotOnConnectAndPublish(t *testing.T) {
	s, ts := newTestServer(t, func(string, string) (resolve.Resolution, bool) {
		return resolve.Resolution{}, false
	})

	ctx := context.Background()
	require.NoError(t, s.Publish(ctx, map[string]string{"state": "initial"}))

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The current snapshot arrives immediately on connect.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"initial"}`, string(msg))

	// Wait until the subscription is registered before publishing, then a
	// publish must reach the client.
	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Publish(ctx, map[string]string{"state": "updated"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"updated"}`, string(msg))
}

func TestResolutionEndpoint(t *testing.T) {
	_, ts := newTestServer(t, func(pageID, actionID string) (resolve.Resolution, bool) {
		if pageID != "home" {
			return resolve.Resolution{}, false
		}
		return resolve.Resolution{
			ActionID:   actionID,
			Resolved:   true,
			Key:        "modal",
			FeatureID:  "VideoModal",
			Candidates: []string{"VideoModal"},
		}, true
	})

	resp, err := http.Get(ts.URL + "/resolution?page=home&action=modal.open")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res resolve.Resolution
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Resolved)
	assert.Equal(t, "modal", res.Key)
	assert.Equal(t, "VideoModal", res.FeatureID)
}

func TestResolutionEndpointValidation(t *testing.T) {
	_, ts := newTestServer(t, func(string, string) (resolve.Resolution, bool) {
		return resolve.Resolution{}, false
	})

	resp, err := http.Get(ts.URL + "/resolution?action=modal.open")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/resolution?page=nope&action=modal.open")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
