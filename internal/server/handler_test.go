package server

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/liforra/ipintel/internal/intel"
	"github.com/liforra/ipintel/internal/query"
	"github.com/liforra/ipintel/internal/records"
	"github.com/liforra/ipintel/internal/server/mock_server"
	"github.com/stretchr/testify/assert"
)

type testLogger struct{}

func (l *testLogger) Debug(string) {}
func (l *testLogger) Info(string)  {}
func (l *testLogger) Warn(string)  {}
func (l *testLogger) Error(string) {}

func Test_handlers_lookup(t *testing.T) {
	t.Parallel()

	record := records.Record{
		Address:   netip.MustParseAddr("1.2.3.4"),
		Country:   "Germany",
		FetchedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	testCases := map[string]struct {
		address      string
		lookupErr    error
		status       int
		responseBody string
	}{
		"success": {
			address: "1.2.3.4",
			status:  http.StatusOK,
			responseBody: `{"address":"1.2.3.4","country":"Germany",` +
				`"vpn":false,"proxy":false,"hosting":false,` +
				`"fetched_at":"2024-01-15T10:00:00Z"}` + "\n",
		},
		"invalid address": {
			address:      "oops",
			lookupErr:    intel.ErrAddressInvalid,
			status:       http.StatusBadRequest,
			responseBody: `{"error":"address is invalid"}` + "\n",
		},
		"rate limited": {
			address:      "1.2.3.4",
			lookupErr:    intel.ErrRateLimited,
			status:       http.StatusTooManyRequests,
			responseBody: `{"error":"rate limited"}` + "\n",
		},
		"not found": {
			address:      "1.2.3.4",
			lookupErr:    intel.ErrAddressNotFound,
			status:       http.StatusNotFound,
			responseBody: `{"error":"no data found for address"}` + "\n",
		},
		"enrichment unavailable": {
			address:      "1.2.3.4",
			lookupErr:    intel.ErrEnrichmentUnavailable,
			status:       http.StatusBadGateway,
			responseBody: `{"error":"enrichment service unavailable"}` + "\n",
		},
		"enrichment auth": {
			address:      "1.2.3.4",
			lookupErr:    intel.ErrEnrichmentAuth,
			status:       http.StatusBadGateway,
			responseBody: `{"error":"enrichment authentication failed"}` + "\n",
		},
		"unknown error": {
			address:      "1.2.3.4",
			lookupErr:    assert.AnError,
			status:       http.StatusInternalServerError,
			responseBody: `{"error":"` + assert.AnError.Error() + `"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			intelLayer := mock_server.NewMockIntelLayer(ctrl)
			if testCase.lookupErr != nil {
				intelLayer.EXPECT().
					Lookup(gomock.Any(), "10.0.0.1", testCase.address).
					Return(records.Record{}, testCase.lookupErr)
			} else {
				intelLayer.EXPECT().
					Lookup(gomock.Any(), "10.0.0.1", testCase.address).
					Return(record, nil)
			}

			handler := newHandler("", intelLayer, &testLogger{})

			request := httptest.NewRequest(http.MethodGet,
				"/api/v1/records/"+testCase.address, nil)
			request.RemoteAddr = "10.0.0.1:53456"
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, request)

			response := w.Result()
			assert.Equal(t, testCase.status, response.StatusCode)
			assert.Equal(t, "application/json",
				response.Header.Get("Content-Type"))
			assert.Equal(t, testCase.responseBody, w.Body.String())
			_ = response.Body.Close()
		})
	}
}

func Test_handlers_refresh(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	record := records.Record{
		Address:   netip.MustParseAddr("1.2.3.4"),
		FetchedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	intelLayer := mock_server.NewMockIntelLayer(ctrl)
	intelLayer.EXPECT().
		Refresh(gomock.Any(), "10.0.0.1", "1.2.3.4").
		Return(record, nil)

	handler := newHandler("", intelLayer, &testLogger{})

	request := httptest.NewRequest(http.MethodPost,
		"/api/v1/records/1.2.3.4/refresh", nil)
	request.RemoteAddr = "10.0.0.1:53456"
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, request)

	response := w.Result()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	_ = response.Body.Close()
}

func Test_handlers_getRecords(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		target       string
		expectedPage *uint
		page         query.Page
		paginateErr  error
		status       int
		responseBody string
	}{
		"default page": {
			target:       "/api/v1/records",
			expectedPage: ptrTo(uint(1)),
			page: query.Page{
				Records:    []records.Record{},
				PageNumber: 1,
				PageSize:   15,
				TotalCount: 0,
				TotalPages: 1,
			},
			status: http.StatusOK,
			responseBody: `{"records":[],"page_number":1,"page_size":15,` +
				`"total_count":0,"total_pages":1}` + "\n",
		},
		"explicit page": {
			target:       "/api/v1/records?page=2",
			expectedPage: ptrTo(uint(2)),
			page: query.Page{
				Records:    []records.Record{},
				PageNumber: 2,
				PageSize:   15,
				TotalCount: 20,
				TotalPages: 2,
			},
			status: http.StatusOK,
			responseBody: `{"records":[],"page_number":2,"page_size":15,` +
				`"total_count":20,"total_pages":2}` + "\n",
		},
		"page not found": {
			target:       "/api/v1/records?page=99",
			expectedPage: ptrTo(uint(99)),
			paginateErr:  query.ErrPageNotFound,
			status:       http.StatusNotFound,
			responseBody: `{"error":"page not found"}` + "\n",
		},
		"invalid page number": {
			target:       "/api/v1/records?page=abc",
			status:       http.StatusBadRequest,
			responseBody: `{"error":"page number abc is not valid"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			intelLayer := mock_server.NewMockIntelLayer(ctrl)
			if testCase.expectedPage != nil {
				intelLayer.EXPECT().Paginate(*testCase.expectedPage).
					Return(testCase.page, testCase.paginateErr)
			}

			handler := newHandler("", intelLayer, &testLogger{})

			request := httptest.NewRequest(http.MethodGet, testCase.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, request)

			response := w.Result()
			assert.Equal(t, testCase.status, response.StatusCode)
			assert.Equal(t, testCase.responseBody, w.Body.String())
			_ = response.Body.Close()
		})
	}
}

func Test_handlers_search(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	matching := []records.Record{
		{
			Address:   netip.MustParseAddr("1.2.3.4"),
			Country:   "Germany",
			FetchedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
	intelLayer := mock_server.NewMockIntelLayer(ctrl)
	intelLayer.EXPECT().Search("germany").Return(matching)

	handler := newHandler("", intelLayer, &testLogger{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=germany", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, request)

	response := w.Result()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	expectedBody := `[{"address":"1.2.3.4","country":"Germany",` +
		`"vpn":false,"proxy":false,"hosting":false,` +
		`"fetched_at":"2024-01-15T10:00:00Z"}]` + "\n"
	assert.Equal(t, expectedBody, w.Body.String())
	_ = response.Body.Close()
}

func Test_handlers_stats(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	intelLayer := mock_server.NewMockIntelLayer(ctrl)
	intelLayer.EXPECT().Stats().Return(query.Stats{
		TotalRecords:    4,
		UniqueCountries: 2,
		VPNCount:        1,
	})

	handler := newHandler("", intelLayer, &testLogger{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, request)

	response := w.Result()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	expectedBody := `{"total_records":4,"unique_countries":2,` +
		`"vpn_count":1,"proxy_count":0,"hosting_count":0}` + "\n"
	assert.Equal(t, expectedBody, w.Body.String())
	_ = response.Body.Close()
}

func Test_handlers_reload(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	intelLayer := mock_server.NewMockIntelLayer(ctrl)
	intelLayer.EXPECT().Reload()

	handler := newHandler("", intelLayer, &testLogger{})

	request := httptest.NewRequest(http.MethodPost, "/api/v1/reload", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, request)

	response := w.Result()
	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	_ = response.Body.Close()
}

func Test_identity(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		remoteAddr string
		identity   string
	}{
		"host and port":  {"10.0.0.1:53456", "10.0.0.1"},
		"no port":        {"10.0.0.1", "10.0.0.1"},
		"ipv6 with port": {"[2001:db8::1]:443", "2001:db8::1"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = testCase.remoteAddr

			assert.Equal(t, testCase.identity, identity(request))
		})
	}
}

func ptrTo[T any](value T) *T { return &value }
