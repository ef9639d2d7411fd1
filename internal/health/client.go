package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	*http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		Client: &http.Client{Timeout: timeout},
	}
}

// Query sends an HTTP request to the health server of another
// instance of this program.
func (c *Client) Query(ctx context.Context, address string) error {
	url := "http://" + address
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	response, err := c.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%s: reading response body: %w",
			response.Status, err)
	}
	return fmt.Errorf("%s: %s", response.Status, string(b))
}
