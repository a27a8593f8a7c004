package config

import "errors"

var (
	errNoSymbols       = errors.New("no symbols defined")
	errDuplicateSymbol = errors.New("duplicate symbol defined")
	errNoDataSettings  = errors.New("no data settings for data source")
	errAmbiguousSource = errors.New("multiple data settings defined")
	errBadDate         = errors.New("unparseable date")
	errStartAfterEnd   = errors.New("start date after end date")
	errNoCSVDir        = errors.New("no csv directory defined")
	errNoAPIKey        = errors.New("no api key defined")
	errNoDatabasePath  = errors.New("no database path defined")
	errFileNotFound    = errors.New("config file not found")
)

// Config defines an individual replay run
type Config struct {
	Nickname     string       `json:"nickname"`
	LogLevel     string       `json:"log-level,omitempty"`
	Symbols      []string     `json:"symbols"`
	DataSettings DataSettings `json:"data-settings"`
}

// DataSettings selects and parameterises the loader variant. Exactly one of
// the variant sections must be set
type DataSettings struct {
	DataSource   string        `json:"data-source"`
	CSVData      *CSVData      `json:"csv-data,omitempty"`
	APIData      *APIData      `json:"api-data,omitempty"`
	DatabaseData *DatabaseData `json:"database-data,omitempty"`
}

// CSVData defines local-file loader variables
type CSVData struct {
	Dir            string `json:"dir"`
	ReversedLayout bool   `json:"reversed-layout"`
}

// APIData defines remote-provider loader variables. Dates are ISO date
// strings; an empty end date means today
type APIData struct {
	APIKey    string `json:"api-key"`
	BaseURL   string `json:"base-url,omitempty"`
	StartDate string `json:"start-date"`
	EndDate   string `json:"end-date,omitempty"`
}

// DatabaseData defines candle-store loader variables
type DatabaseData struct {
	Path      string `json:"path"`
	StartDate string `json:"start-date"`
	EndDate   string `json:"end-date,omitempty"`
}
