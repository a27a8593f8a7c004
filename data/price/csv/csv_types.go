package csv

import "errors"

// Layout selects the column convention of the files in a data directory
type Layout uint8

const (
	// LayoutChronological is the standard convention: oldest row first, the
	// closing price under a "Close" header
	LayoutChronological Layout = iota
	// LayoutReversed is the provider dump convention: newest row first, the
	// closing price under a "Closing price" header. Rows are reversed into
	// chronological order before use
	LayoutReversed
)

const (
	closeHeaderChronological = "Close"
	closeHeaderReversed      = "Closing price"
	fileExtension            = ".csv"
)

var (
	errUnknownLayout   = errors.New("unknown csv layout")
	errNoCloseColumn   = errors.New("close column not found in header")
	errNoRows          = errors.New("file contains no data rows")
	errBadTimestamp    = errors.New("unparseable timestamp")
	errMalformedRow    = errors.New("malformed data row")
	errEmptyDirectory  = errors.New("no data directory provided")
	errNoSymbolsToLoad = errors.New("no symbols to load")
)
