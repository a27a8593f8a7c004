package price

import (
	"errors"
	"testing"
	"time"

	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func obs(n int, price int64) series.Observation {
	return series.Observation{
		Time:  time.Date(2020, 1, n, 0, 0, 0, 0, time.UTC),
		Price: decimal.NewFromInt(price),
	}
}

func TestLoad(t *testing.T) {
	d := DataFromSeries{
		Table: series.NewTable("AAPL", []series.Observation{obs(1, 100), obs(2, 101)}),
	}
	require.NoError(t, d.Load())

	stream := d.GetStream()
	require.Len(t, stream, 2)
	if stream[0].GetSymbol() != "AAPL" {
		t.Errorf("expected AAPL, received %v", stream[0].GetSymbol())
	}
	if !stream[0].GetClosePrice().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100, received %v", stream[0].GetClosePrice())
	}
}

func TestLoadNoData(t *testing.T) {
	d := DataFromSeries{}
	if err := d.Load(); !errors.Is(err, errNoSeriesData) {
		t.Errorf("expected %v, received %v", errNoSeriesData, err)
	}
	d.Table = series.NewTable("AAPL", nil)
	if err := d.Load(); !errors.Is(err, errNoSeriesData) {
		t.Errorf("expected %v, received %v", errNoSeriesData, err)
	}
}

func TestStreamClose(t *testing.T) {
	d := DataFromSeries{
		Table: series.NewTable("AAPL", []series.Observation{obs(1, 100), obs(2, 101), obs(3, 102)}),
	}
	require.NoError(t, d.Load())

	if len(d.StreamClose()) != 0 {
		t.Error("expected no revealed closes before first advance")
	}
	d.Next()
	d.Next()
	closes := d.StreamClose()
	require.Len(t, closes, 2)
	if !closes[1].Equal(decimal.NewFromInt(101)) {
		t.Errorf("expected 101, received %v", closes[1])
	}
}
