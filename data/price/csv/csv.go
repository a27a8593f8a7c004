// Package csv loads per-symbol delimited files from a directory, keyed by
// filename, keeping only the closing price column.
package csv

import (
	gocsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/logging"
	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
)

var log = logging.New("CSV")

// LoadData reads one `<symbol>.csv` per universe symbol from dir, producing
// sorted, filtered native observations for alignment. Any symbol whose file
// cannot be located or parsed fails the whole load
func LoadData(dir string, universe []string, layout Layout) (map[string][]series.Observation, error) {
	if dir == "" {
		return nil, errEmptyDirectory
	}
	if len(universe) == 0 {
		return nil, errNoSymbolsToLoad
	}
	if layout != LayoutChronological && layout != LayoutReversed {
		return nil, fmt.Errorf("%w: %v", errUnknownLayout, layout)
	}

	natives := make(map[string][]series.Observation, len(universe))
	for _, s := range universe {
		obs, err := loadFile(filepath.Join(dir, s+fileExtension), layout)
		if err != nil {
			return nil, fmt.Errorf("%w for %v: %w", common.ErrDataUnavailable, s, err)
		}
		natives[s] = obs
	}
	return natives, nil
}

func loadFile(path string, layout Layout) ([]series.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := gocsv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errNoRows
	}

	closeCol, err := findCloseColumn(records[0], layout)
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	if layout == LayoutReversed {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	obs := make([]series.Observation, 0, len(rows))
	for i := range rows {
		if len(rows[i]) <= closeCol {
			return nil, fmt.Errorf("%w: line %v", errMalformedRow, i+2)
		}
		ts, err := parseTimestamp(rows[i][0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %v %v", errBadTimestamp, i+2, rows[i][0])
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rows[i][closeCol]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %v: %w", errMalformedRow, i+2, err)
		}
		if price.LessThanOrEqual(decimal.Zero) {
			// expected noise in source data, not worth surfacing
			log.Debug().Str("file", filepath.Base(path)).Time("timestamp", ts).Msg("dropping non-positive price")
			continue
		}
		obs = append(obs, series.Observation{Time: ts, Price: price})
	}
	return obs, nil
}

func findCloseColumn(header []string, layout Layout) (int, error) {
	want := closeHeaderChronological
	if layout == LayoutReversed {
		want = closeHeaderReversed
	}
	for i := range header {
		if strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", errNoCloseColumn, want)
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(common.ISODateFormat, raw); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse(common.SimpleTimeFormat, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
