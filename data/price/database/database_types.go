package database

import "errors"

var (
	errNoDatabase      = errors.New("no database connection supplied")
	errNoPath          = errors.New("no database path supplied")
	errNoSymbolsToLoad = errors.New("no symbols to load")
	errNoCandles       = errors.New("no candles in requested range")
)
