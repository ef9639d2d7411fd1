package ipapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_FetchBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty address list", func(t *testing.T) {
		t.Parallel()

		client := New(&http.Client{}, Settings{})

		results, err := client.FetchBatch(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("mixed successes and failures", func(t *testing.T) {
		t.Parallel()

		addresses := []netip.Addr{
			netip.MustParseAddr("1.1.1.1"),
			netip.MustParseAddr("192.168.1.1"),
			netip.MustParseAddr("9.9.9.9"),
		}

		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/batch", r.URL.Path)
				assert.Equal(t, fields, r.URL.Query().Get("fields"))

				var queries []string
				err := json.NewDecoder(r.Body).Decode(&queries)
				require.NoError(t, err)
				assert.Equal(t, []string{"1.1.1.1", "192.168.1.1", "9.9.9.9"},
					queries)

				_, _ = w.Write([]byte(`[
					{"query": "1.1.1.1", "status": "success", "country": "Australia"},
					{"query": "192.168.1.1", "status": "fail", "message": "private range"},
					{"query": "9.9.9.9", "status": "success", "country": "Switzerland"}
				]`))
			}))
		t.Cleanup(server.Close)

		client := New(server.Client(), Settings{
			BaseURL: ptrTo(server.URL),
		})

		results, err := client.FetchBatch(context.Background(), addresses)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Australia", results[addresses[0]].Country)
		assert.Equal(t, "Switzerland", results[addresses[2]].Country)
		_, ok := results[addresses[1]]
		assert.False(t, ok)
	})

	t.Run("bad HTTP status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte("slow down"))
			}))
		t.Cleanup(server.Close)

		client := New(server.Client(), Settings{
			BaseURL: ptrTo(server.URL),
		})

		results, err := client.FetchBatch(context.Background(),
			[]netip.Addr{netip.MustParseAddr("1.1.1.1")})

		assert.ErrorIs(t, err, ErrTooManyRequests)
		assert.Nil(t, results)
	})

	t.Run("invalid address in list", func(t *testing.T) {
		t.Parallel()

		client := New(&http.Client{}, Settings{})

		results, err := client.FetchBatch(context.Background(),
			[]netip.Addr{{}})

		assert.ErrorIs(t, err, ErrAddressInvalid)
		assert.Nil(t, results)
	})
}
