package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/quantsim/marketreplay/series"
)

const (
	// DefaultBaseURL points at the provider's dataset endpoint
	DefaultBaseURL = "https://data.nasdaq.com/api/v3"

	defaultTimeout = time.Second * 30
)

var (
	errNoProvider      = errors.New("no provider supplied")
	errNoAPIKey        = errors.New("no api key supplied")
	errNoSymbolsToLoad = errors.New("no symbols to load")
	errBadStatus       = errors.New("unexpected response status")
	errBadPayload      = errors.New("unexpected response payload")
	errDateOrder       = errors.New("start date after end date")
)

// Provider fetches a bounded date range of native observations for one
// symbol. Implementations strip everything but the closing price
type Provider interface {
	GetHistoricPrices(ctx context.Context, symbol string, start, end time.Time) ([]series.Observation, error)
}

// Client is a Provider backed by the remote REST data source
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// datasetResponse mirrors the provider's dataset payload. Rows arrive
// newest-first as [date, close, ...extra columns]
type datasetResponse struct {
	Dataset struct {
		ColumnNames []string        `json:"column_names"`
		Data        [][]interface{} `json:"data"`
	} `json:"dataset"`
}
