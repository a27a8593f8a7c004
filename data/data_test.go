package data

import (
	"errors"
	"testing"
	"time"

	"github.com/quantsim/marketreplay/eventtypes/bar"
	"github.com/quantsim/marketreplay/eventtypes/event"
	"github.com/shopspring/decimal"
)

func testBar(symbol string, n int, price int64) Event {
	return &bar.Bar{
		Event: event.Event{
			Time:   time.Date(2020, 1, n, 0, 0, 0, 0, time.UTC),
			Symbol: symbol,
		},
		Close: decimal.NewFromInt(price),
	}
}

func TestNext(t *testing.T) {
	var d Base
	d.AppendStream(testBar("A", 1, 100), testBar("A", 2, 101))

	ev, ok := d.Next()
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.GetOffset() != 1 {
		t.Errorf("expected offset 1, received %v", ev.GetOffset())
	}
	if _, ok = d.Next(); !ok {
		t.Fatal("expected a second event")
	}
	if _, ok = d.Next(); ok {
		t.Error("expected exhaustion")
	}
	// exhaustion is terminal
	if _, ok = d.Next(); ok {
		t.Error("expected exhaustion to be terminal")
	}
}

func TestHistoryGrowsByOne(t *testing.T) {
	var d Base
	d.AppendStream(testBar("A", 1, 100), testBar("A", 2, 101), testBar("A", 3, 102))

	for i := 1; i <= 3; i++ {
		before := len(d.History())
		d.Next()
		if len(d.History()) != before+1 {
			t.Errorf("expected history to grow by exactly one, had %v now %v", before, len(d.History()))
		}
	}
	before := len(d.History())
	d.Next()
	if len(d.History()) != before {
		t.Error("expected history to be unchanged after exhaustion")
	}
}

func TestLatest(t *testing.T) {
	var d Base
	if d.Latest() != nil {
		t.Error("expected nil latest before first advance")
	}
	d.AppendStream(testBar("A", 1, 100), testBar("A", 2, 101))
	d.Next()
	latest := d.Latest()
	if latest == nil || !latest.GetTime().Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected latest %v", latest)
	}
}

func TestIsLastEvent(t *testing.T) {
	var d Base
	d.AppendStream(testBar("A", 1, 100))
	if d.IsLastEvent() {
		t.Error("expected not last before first advance")
	}
	d.Next()
	if !d.IsLastEvent() {
		t.Error("expected last after final advance")
	}
}

func TestAppendStreamIgnoresNil(t *testing.T) {
	var d Base
	d.AppendStream(nil, testBar("A", 1, 100), nil)
	if len(d.GetStream()) != 1 {
		t.Errorf("expected 1 event, received %v", len(d.GetStream()))
	}
}

func TestSortStream(t *testing.T) {
	var d Base
	d.AppendStream(testBar("A", 3, 102), testBar("A", 1, 100), testBar("A", 2, 101))
	d.SortStream()
	s := d.GetStream()
	for i := 1; i < len(s); i++ {
		if s[i-1].GetTime().After(s[i].GetTime()) {
			t.Error("expected sorted stream")
		}
	}
}

func TestHandlerPerSymbol(t *testing.T) {
	h := HandlerPerSymbol{}
	h.Setup()
	if h.data == nil {
		t.Error("expected map setup")
	}
	h.SetDataForSymbol("A", &fakeHandler{})
	if _, err := h.GetDataForSymbol("A"); err != nil {
		t.Errorf("expected handler, received %v", err)
	}
	if _, err := h.GetDataForSymbol("B"); !errors.Is(err, ErrHandlerNotFound) {
		t.Errorf("expected %v, received %v", ErrHandlerNotFound, err)
	}
	if len(h.GetAllData()) != 1 {
		t.Error("expected one handler")
	}
}

type fakeHandler struct {
	Base
}

func (f *fakeHandler) Load() error { return nil }

func (f *fakeHandler) StreamClose() []decimal.Decimal { return nil }
