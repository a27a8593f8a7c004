package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/config"
	"github.com/quantsim/marketreplay/data"
	"github.com/quantsim/marketreplay/data/price"
	"github.com/quantsim/marketreplay/data/price/api"
	"github.com/quantsim/marketreplay/data/price/csv"
	"github.com/quantsim/marketreplay/data/price/database"
	"github.com/quantsim/marketreplay/eventholder"
	"github.com/quantsim/marketreplay/logging"
	"github.com/quantsim/marketreplay/series"
)

// New aligns the supplied native series onto the union calendar and builds
// one cursor and one empty latest buffer per universe symbol. Construction
// fails outright on any unloadable symbol; the feed is never built in a
// half-loaded state
func New(universe []string, natives map[string][]series.Observation, queue eventholder.EventHolder, nickname string) (*Feed, error) {
	if queue == nil {
		return nil, errNoEventHolder
	}

	tables, err := series.Align(natives, universe)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	f := &Feed{
		MetaData: MetaData{
			ID:         id.String(),
			Nickname:   nickname,
			DateLoaded: time.Now().UTC(),
		},
		universe:     append([]string(nil), universe...),
		holder:       &data.HandlerPerSymbol{},
		materialized: make(map[string]*series.Table, len(universe)),
		queue:        queue,
		run:          true,
		log:          logging.New("FEED"),
	}
	f.holder.Setup()

	for _, s := range universe {
		// the cursor consumes its table, so the report reads from an
		// independent copy taken before replay starts
		f.materialized[s] = tables[s].Copy()

		handler := &price.DataFromSeries{Table: tables[s]}
		if err := handler.Load(); err != nil {
			return nil, fmt.Errorf("%w for %v: %w", common.ErrDataUnavailable, s, err)
		}
		f.holder.SetDataForSymbol(s, handler)
	}

	f.log.Info().
		Str("id", f.MetaData.ID).
		Str("nickname", nickname).
		Int("symbols", len(universe)).
		Msg("feed constructed")
	return f, nil
}

// NewFromConfig builds a feed using the loader variant the config selects.
// All I/O happens here, up front; replay ticks never perform I/O
func NewFromConfig(ctx context.Context, cfg *config.Config, queue eventholder.EventHolder) (*Feed, error) {
	if cfg == nil {
		return nil, errNoConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var natives map[string][]series.Observation
	var err error
	switch cfg.DataSettings.DataSource {
	case common.CSVStr:
		layout := csv.LayoutChronological
		if cfg.DataSettings.CSVData.ReversedLayout {
			layout = csv.LayoutReversed
		}
		natives, err = csv.LoadData(cfg.DataSettings.CSVData.Dir, cfg.Symbols, layout)
	case common.APIStr:
		var client *api.Client
		client, err = api.NewClient(cfg.DataSettings.APIData.APIKey, cfg.DataSettings.APIData.BaseURL)
		if err != nil {
			return nil, err
		}
		var start, end time.Time
		if start, err = config.ParseDate(cfg.DataSettings.APIData.StartDate); err != nil {
			return nil, err
		}
		if end, err = config.ParseDate(cfg.DataSettings.APIData.EndDate); err != nil {
			return nil, err
		}
		natives, err = api.LoadData(ctx, client, cfg.Symbols, start, end)
	case common.DatabaseStr:
		var start, end time.Time
		if start, err = config.ParseDate(cfg.DataSettings.DatabaseData.StartDate); err != nil {
			return nil, err
		}
		if end, err = config.ParseDate(cfg.DataSettings.DatabaseData.EndDate); err != nil {
			return nil, err
		}
		db, cErr := database.Connect(cfg.DataSettings.DatabaseData.Path)
		if cErr != nil {
			return nil, cErr
		}
		defer db.Close()
		natives, err = database.LoadData(ctx, db, cfg.Symbols, start, end)
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidDataSource, cfg.DataSettings.DataSource)
	}
	if err != nil {
		return nil, err
	}

	return New(cfg.Symbols, natives, queue, cfg.Nickname)
}
