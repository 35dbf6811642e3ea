package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// providerClient registers addresses on the external chain-indexing
// provider's watch list. The provider endpoint is idempotent per (chain,
// address) and answers with a stable subscription id.
type providerClient struct {
	url    string
	client *http.Client
}

func newProviderClient(url string, timeout time.Duration) *providerClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &providerClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type providerSubscribeRequest struct {
	ChainID int    `json:"chain_id"`
	Address string `json:"address"`
}

type providerSubscribeResponse struct {
	SubscriptionID string `json:"subscription_id"`
	Status         string `json:"status"`
}

func (p *providerClient) EnsureSubscription(ctx context.Context, chainID int, address string) (string, error) {
	body, err := json.Marshal(providerSubscribeRequest{ChainID: chainID, Address: address})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode provider request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "provider request failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return "", errors.Errorf("provider answered status %d", res.StatusCode)
	}

	var parsed providerSubscribeResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode provider response")
	}

	if parsed.SubscriptionID == "" {
		return "", errors.New("provider response carries no subscription id")
	}

	return parsed.SubscriptionID, nil
}
