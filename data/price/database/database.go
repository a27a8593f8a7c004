// Package database loads native observations from a local sqlite candle
// store, one bounded range query per symbol.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// sqlite driver registration
	_ "github.com/mattn/go-sqlite3"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/logging"
	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
)

var log = logging.New("DATABASE")

const createCandlesTable = `CREATE TABLE IF NOT EXISTS candles (
	symbol TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	close REAL NOT NULL,
	PRIMARY KEY (symbol, timestamp)
)`

// Connect opens the sqlite candle store at path and ensures the schema
// exists
func Connect(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errNoPath
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createCandlesTable); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// LoadData queries a bounded range of candles for every universe symbol.
// A symbol with no rows in range fails the whole load
func LoadData(ctx context.Context, db *sql.DB, universe []string, start, end time.Time) (map[string][]series.Observation, error) {
	if db == nil {
		return nil, errNoDatabase
	}
	if len(universe) == 0 {
		return nil, errNoSymbolsToLoad
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}

	natives := make(map[string][]series.Observation, len(universe))
	for _, s := range universe {
		obs, err := loadSymbol(ctx, db, s, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w for %v: %w", common.ErrDataUnavailable, s, err)
		}
		natives[s] = obs
	}
	return natives, nil
}

func loadSymbol(ctx context.Context, db *sql.DB, symbol string, start, end time.Time) ([]series.Observation, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT timestamp, close FROM candles WHERE symbol = ? AND timestamp >= ? AND timestamp <= ? ORDER BY timestamp",
		symbol, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obs []series.Observation
	for rows.Next() {
		var unix int64
		var closePrice float64
		if err := rows.Scan(&unix, &closePrice); err != nil {
			return nil, err
		}
		ts := time.Unix(unix, 0).UTC()
		price := decimal.NewFromFloat(closePrice)
		if price.LessThanOrEqual(decimal.Zero) {
			log.Debug().Str("symbol", symbol).Time("timestamp", ts).Msg("dropping non-positive price")
			continue
		}
		obs = append(obs, series.Observation{Time: ts, Price: price})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, errNoCandles
	}
	return obs, nil
}

// InsertCandles stores candles for a symbol, replacing duplicates. Used by
// seeding tools and tests
func InsertCandles(ctx context.Context, db *sql.DB, symbol string, obs ...series.Observation) error {
	if db == nil {
		return errNoDatabase
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for i := range obs {
		price, _ := obs[i].Price.Float64()
		_, err = tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO candles (symbol, timestamp, close) VALUES (?, ?, ?)",
			symbol, obs[i].Time.Unix(), price)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
