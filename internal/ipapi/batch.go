package ipapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"time"
)

const (
	// maxBatchSize is the provider's limit of addresses per batch call.
	maxBatchSize = 100
	// batchPause is the pause between consecutive batch calls, to stay
	// under the provider's batch endpoint rate limit.
	batchPause = 2 * time.Second
)

// FetchBatch looks up multiple addresses using the provider's batch
// endpoint, chunking requests to the provider's batch size limit and
// pausing between chunks. Addresses the provider has no data for are
// absent from the returned map.
func (c *Client) FetchBatch(ctx context.Context, addresses []netip.Addr) (
	results map[netip.Addr]Record, err error) {
	results = make(map[netip.Addr]Record, len(addresses))
	for start := 0; start < len(addresses); start += maxBatchSize {
		if start > 0 {
			timer := time.NewTimer(batchPause)
			select {
			case <-timer.C:
			case <-ctx.Done():
				_ = timer.Stop()
				return nil, ctx.Err()
			}
		}

		end := start + maxBatchSize
		if end > len(addresses) {
			end = len(addresses)
		}

		err = c.fetchChunk(ctx, addresses[start:end], results)
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (c *Client) fetchChunk(ctx context.Context, addresses []netip.Addr,
	results map[netip.Addr]Record) (err error) {
	queries := make([]string, len(addresses))
	for i, address := range addresses {
		if !address.IsValid() {
			return fmt.Errorf("%w: %s", ErrAddressInvalid, address)
		}
		queries[i] = address.String()
	}

	body, err := json.Marshal(queries)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	url := c.baseURL + "/batch?fields=" + fields
	if c.key != "" {
		url += "&key=" + c.key
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w (%s)", ErrAuth, bodyString)
	case http.StatusTooManyRequests:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w (%s)", ErrTooManyRequests, bodyString)
	default:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, response.Status, bodyString)
	}

	decoder := json.NewDecoder(response.Body)
	var data []responseData
	err = decoder.Decode(&data)
	_ = response.Body.Close()
	if err != nil {
		return fmt.Errorf("decoding JSON response: %w", err)
	}

	for _, entry := range data {
		if entry.Status != "success" {
			// per-address failure, the address is simply left out
			continue
		}
		address, err := netip.ParseAddr(entry.Query)
		if err != nil {
			continue
		}
		record, err := entry.toRecord(address)
		if err != nil {
			continue
		}
		results[address] = record
	}
	return nil
}
