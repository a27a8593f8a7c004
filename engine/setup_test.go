package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/config"
	"github.com/quantsim/marketreplay/eventholder"
	"github.com/stretchr/testify/require"
)

func csvConfig() *config.Config {
	return &config.Config{
		Nickname: "setup test",
		Symbols:  []string{"AAPL", "MSFT"},
		DataSettings: config.DataSettings{
			DataSource: common.CSVStr,
			CSVData:    &config.CSVData{Dir: "testdata"},
		},
	}
}

func TestNewFromConfig(t *testing.T) {
	queue := &eventholder.Holder{}
	feed, err := NewFromConfig(context.Background(), csvConfig(), queue)
	require.NoError(t, err)
	require.True(t, feed.IsRunning())

	var ticks int
	for feed.IsRunning() {
		feed.AdvanceAll()
		ticks++
	}
	// three shared bars plus the exhausting tick
	if ticks != 4 {
		t.Errorf("expected 4 ticks, received %v", ticks)
	}
	if len(queue.Queue) != 4 {
		t.Errorf("expected 4 notifications, received %v", len(queue.Queue))
	}

	latest, err := feed.GetLatest("AAPL", 10)
	require.NoError(t, err)
	require.Len(t, latest, 3)
}

func TestNewFromConfigNilConfig(t *testing.T) {
	if _, err := NewFromConfig(context.Background(), nil, &eventholder.Holder{}); !errors.Is(err, errNoConfig) {
		t.Errorf("expected %v, received %v", errNoConfig, err)
	}
}

func TestNewFromConfigUnloadableSymbol(t *testing.T) {
	cfg := csvConfig()
	cfg.Symbols = append(cfg.Symbols, "GOOG")
	_, err := NewFromConfig(context.Background(), cfg, &eventholder.Holder{})
	if !errors.Is(err, common.ErrDataUnavailable) {
		t.Errorf("expected %v, received %v", common.ErrDataUnavailable, err)
	}
}

func TestNewFromConfigInvalidSource(t *testing.T) {
	cfg := csvConfig()
	cfg.DataSettings.DataSource = "carrier pigeon"
	_, err := NewFromConfig(context.Background(), cfg, &eventholder.Holder{})
	if !errors.Is(err, common.ErrInvalidDataSource) {
		t.Errorf("expected %v, received %v", common.ErrInvalidDataSource, err)
	}
}
