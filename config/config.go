package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/logging"
)

var log = logging.New("CONFIG")

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", errFileNotFound, path)
	}
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshals byte data into a config struct
func LoadConfig(data []byte) (resp *Config, err error) {
	err = json.Unmarshal(data, &resp)
	return resp, err
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if err := c.validateSymbols(); err != nil {
		return err
	}
	return c.validateDataSettings()
}

func (c *Config) validateSymbols() error {
	if len(c.Symbols) == 0 {
		return errNoSymbols
	}
	seen := make(map[string]bool, len(c.Symbols))
	for i := range c.Symbols {
		s := strings.TrimSpace(c.Symbols[i])
		if s == "" {
			return errNoSymbols
		}
		if seen[s] {
			return fmt.Errorf("%w: %v", errDuplicateSymbol, s)
		}
		seen[s] = true
		c.Symbols[i] = s
	}
	return nil
}

func (c *Config) validateDataSettings() error {
	d := &c.DataSettings
	var set int
	if d.CSVData != nil {
		set++
	}
	if d.APIData != nil {
		set++
	}
	if d.DatabaseData != nil {
		set++
	}
	if set > 1 {
		return errAmbiguousSource
	}
	switch d.DataSource {
	case common.CSVStr:
		if d.CSVData == nil {
			return fmt.Errorf("%w %v", errNoDataSettings, d.DataSource)
		}
		if d.CSVData.Dir == "" {
			return errNoCSVDir
		}
	case common.APIStr:
		if d.APIData == nil {
			return fmt.Errorf("%w %v", errNoDataSettings, d.DataSource)
		}
		if d.APIData.APIKey == "" {
			return errNoAPIKey
		}
		return validateDates(d.APIData.StartDate, d.APIData.EndDate)
	case common.DatabaseStr:
		if d.DatabaseData == nil {
			return fmt.Errorf("%w %v", errNoDataSettings, d.DataSource)
		}
		if d.DatabaseData.Path == "" {
			return errNoDatabasePath
		}
		return validateDates(d.DatabaseData.StartDate, d.DatabaseData.EndDate)
	default:
		return fmt.Errorf("%w: %v", common.ErrInvalidDataSource, d.DataSource)
	}
	return nil
}

func validateDates(start, end string) error {
	s, err := ParseDate(start)
	if err != nil {
		return err
	}
	if end == "" {
		return nil
	}
	e, err := ParseDate(end)
	if err != nil {
		return err
	}
	if s.After(e) {
		return fmt.Errorf("%w: %v after %v", errStartAfterEnd, start, end)
	}
	return nil
}

// ParseDate converts an ISO date string into a UTC time. An empty string
// returns the zero time, which loaders treat as "today"
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(common.ISODateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errBadDate, raw)
	}
	return ts.UTC(), nil
}

// PrintSetting prints the run settings to the log
func (c *Config) PrintSetting() {
	log.Info().Str("nickname", c.Nickname).Msg("------------------Replay Settings----------------------------")
	log.Info().Strs("symbols", c.Symbols).Msg("symbol universe")
	log.Info().Str("data-source", c.DataSettings.DataSource).Msg("loader")
	switch {
	case c.DataSettings.CSVData != nil:
		log.Info().
			Str("dir", c.DataSettings.CSVData.Dir).
			Bool("reversed-layout", c.DataSettings.CSVData.ReversedLayout).
			Msg("csv settings")
	case c.DataSettings.APIData != nil:
		log.Info().
			Str("start-date", c.DataSettings.APIData.StartDate).
			Str("end-date", c.DataSettings.APIData.EndDate).
			Msg("api settings")
	case c.DataSettings.DatabaseData != nil:
		log.Info().
			Str("path", c.DataSettings.DatabaseData.Path).
			Str("start-date", c.DataSettings.DatabaseData.StartDate).
			Str("end-date", c.DataSettings.DatabaseData.EndDate).
			Msg("database settings")
	}
}
