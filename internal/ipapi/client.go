package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"strings"
)

// fields requested from the provider for every lookup.
const fields = "query,status,message,country,countryCode,region,regionName," +
	"city,zip,lat,lon,timezone,isp,org,as,proxy,hosting"

type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

// New creates an ip-api.com client. An empty key uses the free
// endpoint, which the provider rate limits per source address.
func New(httpClient *http.Client, settings Settings) *Client {
	settings.SetDefaults()
	return &Client{
		httpClient: httpClient,
		baseURL:    *settings.BaseURL,
		key:        *settings.Key,
	}
}

// Fetch looks up a single address with the provider. It issues exactly
// one HTTP request and never retries.
func (c *Client) Fetch(ctx context.Context, address netip.Addr) (
	record Record, err error) {
	if !address.IsValid() {
		return record, fmt.Errorf("%w: %s", ErrAddressInvalid, address)
	}

	url := c.baseURL + "/json/" + address.String() + "?fields=" + fields
	if c.key != "" {
		url += "&key=" + c.key
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return record, fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return record, fmt.Errorf("doing request: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return record, fmt.Errorf("%w (%s)", ErrAuth, bodyString)
	case http.StatusTooManyRequests:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return record, fmt.Errorf("%w (%s)", ErrTooManyRequests, bodyString)
	default:
		bodyString := bodyToSingleLine(response.Body)
		_ = response.Body.Close()
		return record, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, response.Status, bodyString)
	}

	decoder := json.NewDecoder(response.Body)
	var data responseData
	err = decoder.Decode(&data)
	_ = response.Body.Close()
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	return data.toRecord(address)
}

// responseData is the wire format of one provider result. The provider
// signals per-address failures with a 200 status code and a "fail"
// status field, so errors are mapped from the message field.
type responseData struct {
	Query       string  `json:"query"`
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Proxy       bool    `json:"proxy"`
	Hosting     bool    `json:"hosting"`
}

func (d responseData) toRecord(address netip.Addr) (record Record, err error) {
	if d.Status != "success" {
		return record, failureToError(d.Message)
	}

	if d.Query != "" {
		queryAddress, err := netip.ParseAddr(d.Query)
		if err == nil {
			address = queryAddress
		}
	}

	return Record{
		Address:     address,
		Country:     d.Country,
		CountryCode: d.CountryCode,
		Region:      d.Region,
		RegionName:  d.RegionName,
		City:        d.City,
		Zip:         d.Zip,
		Latitude:    d.Lat,
		Longitude:   d.Lon,
		Timezone:    d.Timezone,
		ISP:         d.ISP,
		Org:         d.Org,
		AS:          d.AS,
		Proxy:       d.Proxy,
		Hosting:     d.Hosting,
	}, nil
}

func failureToError(message string) error {
	lowercaseMessage := strings.ToLower(message)
	switch {
	case strings.Contains(lowercaseMessage, "invalid query"):
		return fmt.Errorf("%w: %s", ErrAddressInvalid, message)
	case strings.Contains(lowercaseMessage, "private range"),
		strings.Contains(lowercaseMessage, "reserved range"):
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case strings.Contains(lowercaseMessage, "key"):
		return fmt.Errorf("%w: %s", ErrAuth, message)
	default:
		return fmt.Errorf("%w: %s", ErrProviderFailure, message)
	}
}
