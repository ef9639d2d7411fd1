package intel

import (
	"context"
	"net/netip"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/liforra/ipintel/internal/intel/mock_intel"
	"github.com/liforra/ipintel/internal/ipapi"
	"github.com/liforra/ipintel/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (l *testLogger) Debug(string) {}
func (l *testLogger) Info(string)  {}
func (l *testLogger) Warn(string)  {}
func (l *testLogger) Error(string) {}

type testNotifier struct {
	mutex    sync.Mutex
	messages []string
}

func (n *testNotifier) Notify(message string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.messages = append(n.messages, message)
}

func newTestIntel(db Database, fetcher Fetcher, limiter Limiter,
	reverser Reverser, notifier Notifier) *Intel {
	intel := New(db, fetcher, limiter, reverser, &testLogger{}, notifier)
	intel.timeNow = func() time.Time { return time.Unix(1000, 0) }
	return intel
}

func Test_Intel_Lookup(t *testing.T) {
	t.Parallel()

	addr := netip.MustParseAddr("88.88.88.88")
	const identity = "10.0.0.1"

	providerRecord := ipapi.Record{
		Address:    addr,
		Country:    "Norway",
		RegionName: "Oslo County",
		City:       "Oslo",
		ISP:        "Telenor Norge AS",
	}
	builtRecord := records.Record{
		Address:   addr,
		Country:   "Norway",
		Region:    "Oslo County",
		City:      "Oslo",
		ISP:       "Telenor Norge AS",
		Raw: map[string]string{
			"country":    "Norway",
			"regionName": "Oslo County",
			"city":       "Oslo",
			"isp":        "Telenor Norge AS",
			"lat":        "0",
			"lon":        "0",
			"proxy":      "false",
			"hosting":    "false",
		},
		FetchedAt: time.Unix(1000, 0),
	}

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()

		intel := newTestIntel(nil, nil, nil, nil, nil)

		_, err := intel.Lookup(context.Background(), identity, "not-an-ip")

		assert.ErrorIs(t, err, ErrAddressInvalid)
		assert.EqualError(t, err, `address is invalid: "not-an-ip"`)
	})

	t.Run("cache hit consumes no quota", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		cached := records.Record{Address: addr, Country: "Norway"}
		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(cached, true)
		// no limiter nor fetcher expectations: any call fails the test
		limiter := mock_intel.NewMockLimiter(ctrl)
		fetcher := mock_intel.NewMockFetcher(ctrl)

		intel := newTestIntel(db, fetcher, limiter, nil, nil)

		record, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		require.NoError(t, err)
		assert.Equal(t, cached, record)
	})

	t.Run("miss fetches and stores", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		db.EXPECT().Update(builtRecord).Return(nil)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).Return(providerRecord, nil)

		intel := newTestIntel(db, fetcher, limiter, nil, nil)

		record, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		require.NoError(t, err)
		assert.Equal(t, builtRecord, record)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(false, 30*time.Second)

		intel := newTestIntel(db, nil, limiter, nil, nil)

		_, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		assert.ErrorIs(t, err, ErrRateLimited)
		assert.EqualError(t, err, "rate limited: retry in 30s")
	})

	t.Run("failed enrichment is not cached", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		// no Update expectation: a store write fails the test
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).
			Return(ipapi.Record{}, ipapi.ErrProviderFailure)

		intel := newTestIntel(db, fetcher, limiter, nil, nil)

		_, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		assert.ErrorIs(t, err, ErrEnrichmentUnavailable)
	})

	t.Run("auth failure notifies", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).
			Return(ipapi.Record{}, ipapi.ErrAuth)
		notifier := &testNotifier{}

		intel := newTestIntel(db, fetcher, limiter, nil, notifier)

		_, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		assert.ErrorIs(t, err, ErrEnrichmentAuth)
		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "authentication")
	})

	t.Run("store write failure still returns the record", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		db.EXPECT().Update(builtRecord).Return(assert.AnError)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).Return(providerRecord, nil)
		notifier := &testNotifier{}

		intel := newTestIntel(db, fetcher, limiter, nil, notifier)

		record, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		require.NoError(t, err)
		assert.Equal(t, builtRecord, record)
		assert.Len(t, notifier.messages, 1)
	})

	t.Run("reverse DNS failure is not fatal", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		db.EXPECT().Update(builtRecord).Return(nil)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).Return(providerRecord, nil)
		reverser := mock_intel.NewMockReverser(ctrl)
		reverser.EXPECT().Lookup(gomock.Any(), addr).
			Return("", assert.AnError)

		intel := newTestIntel(db, fetcher, limiter, reverser, nil)

		record, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		require.NoError(t, err)
		assert.Empty(t, record.Hostname)
	})

	t.Run("reverse DNS hostname is recorded", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		withHostname := builtRecord
		withHostname.Hostname = "ti.telenor.net"

		db := mock_intel.NewMockDatabase(ctrl)
		db.EXPECT().Select(addr).Return(records.Record{}, false).Times(2)
		db.EXPECT().Update(withHostname).Return(nil)
		limiter := mock_intel.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
		fetcher := mock_intel.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), addr).Return(providerRecord, nil)
		reverser := mock_intel.NewMockReverser(ctrl)
		reverser.EXPECT().Lookup(gomock.Any(), addr).
			Return("ti.telenor.net", nil)

		intel := newTestIntel(db, fetcher, limiter, reverser, nil)

		record, err := intel.Lookup(context.Background(), identity, "88.88.88.88")

		require.NoError(t, err)
		assert.Equal(t, withHostname, record)
	})
}

func Test_Intel_Refresh(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	addr := netip.MustParseAddr("88.88.88.88")
	const identity = "10.0.0.1"
	providerRecord := ipapi.Record{Address: addr, Country: "Norway"}

	// Refresh never consults the cache before fetching.
	db := mock_intel.NewMockDatabase(ctrl)
	db.EXPECT().Update(gomock.Any()).Return(nil)
	limiter := mock_intel.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow(identity).Return(true, time.Duration(0))
	fetcher := mock_intel.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), addr).Return(providerRecord, nil)

	intel := newTestIntel(db, fetcher, limiter, nil, nil)

	record, err := intel.Refresh(context.Background(), identity, "88.88.88.88")

	require.NoError(t, err)
	assert.Equal(t, "Norway", record.Country)
}

// fakeDatabase is a minimal map backed store for concurrency tests.
type fakeDatabase struct {
	mutex sync.RWMutex
	data  map[netip.Addr]records.Record
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{data: map[netip.Addr]records.Record{}}
}

func (db *fakeDatabase) Select(address netip.Addr) (records.Record, bool) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	record, ok := db.data[address]
	return record, ok
}

func (db *fakeDatabase) SelectAll() []records.Record {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	allRecords := make([]records.Record, 0, len(db.data))
	for _, record := range db.data {
		allRecords = append(allRecords, record)
	}
	return allRecords
}

func (db *fakeDatabase) Len() int {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return len(db.data)
}

func (db *fakeDatabase) Update(record records.Record) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.data[record.Address] = record
	return nil
}

func (db *fakeDatabase) Reload() {}

type countingFetcher struct {
	calls int32
}

func (f *countingFetcher) Fetch(_ context.Context, address netip.Addr) (
	ipapi.Record, error) {
	atomic.AddInt32(&f.calls, 1)
	time.Sleep(10 * time.Millisecond) // let other lookups pile up
	return ipapi.Record{Address: address, Country: "Norway"}, nil
}

func (f *countingFetcher) FetchBatch(context.Context, []netip.Addr) (
	map[netip.Addr]ipapi.Record, error) {
	panic("not implemented")
}

type countingLimiter struct {
	calls int32
}

func (l *countingLimiter) Allow(string) (bool, time.Duration) {
	atomic.AddInt32(&l.calls, 1)
	return true, 0
}

func Test_Intel_Lookup_concurrentMissesShareOneFetch(t *testing.T) {
	t.Parallel()

	db := newFakeDatabase()
	fetcher := &countingFetcher{}
	limiter := &countingLimiter{}
	intel := newTestIntel(db, fetcher, limiter, nil, nil)

	const lookups = 20
	var waitGroup sync.WaitGroup
	waitGroup.Add(lookups)
	for i := 0; i < lookups; i++ {
		go func() {
			defer waitGroup.Done()
			record, err := intel.Lookup(context.Background(),
				"10.0.0.1", "88.88.88.88")
			assert.NoError(t, err)
			assert.Equal(t, "Norway", record.Country)
		}()
	}
	waitGroup.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&limiter.calls))
}
