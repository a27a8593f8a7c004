package event

import "time"

// Event contains the identifying information shared by everything travelling
// through the feed
type Event struct {
	Offset int64
	Time   time.Time
	Symbol string
}
