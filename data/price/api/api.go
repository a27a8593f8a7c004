// Package api loads native observations from a remote financial-data
// provider, keyed by symbol over a bounded date range.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/logging"
	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
)

var log = logging.New("API")

// NewClient returns a provider client for the given credential. An empty
// baseURL selects the default endpoint
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errNoAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// LoadData fetches every universe symbol from the provider. The end bound
// defaults to the current date when zero. Any symbol the provider cannot
// serve fails the whole load
func LoadData(ctx context.Context, p Provider, universe []string, start, end time.Time) (map[string][]series.Observation, error) {
	if p == nil {
		return nil, errNoProvider
	}
	if len(universe) == 0 {
		return nil, errNoSymbolsToLoad
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: %v after %v", errDateOrder, start, end)
	}

	natives := make(map[string][]series.Observation, len(universe))
	for _, s := range universe {
		obs, err := p.GetHistoricPrices(ctx, s, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w for %v: %w", common.ErrDataUnavailable, s, err)
		}
		natives[s] = obs
	}
	return natives, nil
}

// GetHistoricPrices implements Provider over the REST dataset endpoint,
// keeping only the closing price column and filtering non-positive prices
func (c *Client) GetHistoricPrices(ctx context.Context, symbol string, start, end time.Time) ([]series.Observation, error) {
	endpoint := fmt.Sprintf("%s/datasets/%s.json?%s",
		c.BaseURL,
		url.PathEscape(symbol),
		url.Values{
			"api_key":    {c.APIKey},
			"start_date": {start.Format(common.ISODateFormat)},
			"end_date":   {end.Format(common.ISODateFormat)},
		}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %v", errBadStatus, resp.Status)
	}

	var payload datasetResponse
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}

	obs := make([]series.Observation, 0, len(payload.Dataset.Data))
	for i := range payload.Dataset.Data {
		row := payload.Dataset.Data[i]
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %v has %v columns", errBadPayload, i, len(row))
		}
		rawDate, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: row %v date", errBadPayload, i)
		}
		ts, err := time.Parse(common.ISODateFormat, rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: %w", errBadPayload, i, err)
		}
		rawClose, ok := row[1].(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: row %v close", errBadPayload, i)
		}
		price, err := decimal.NewFromString(rawClose.String())
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: %w", errBadPayload, i, err)
		}
		if price.LessThanOrEqual(decimal.Zero) {
			log.Debug().Str("symbol", symbol).Time("timestamp", ts).Msg("dropping non-positive price")
			continue
		}
		obs = append(obs, series.Observation{Time: ts.UTC(), Price: price})
	}
	return obs, nil
}
