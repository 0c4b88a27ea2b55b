package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/market"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
)

// Setup retrieves every symbol's raw series from the repository and aligns
// them onto one shared timestamp axis. The axis is the union of all native
// timestamps, beginning at the latest first-timestamp across the universe so
// forward-fill always has a prior value to carry. Gaps are padded with the
// prior bar, never backfilled
func Setup(repo Repository, universe []string, start, end time.Time) (*Feed, error) {
	if repo == nil {
		return nil, common.ErrNilArguments
	}
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}

	raw := make(map[string][]Bar, len(universe))
	unionSet := make(map[time.Time]struct{})
	var alignStart time.Time
	for i := range universe {
		series, err := repo.PriceSeries(universe[i], start, end)
		if err != nil {
			return nil, fmt.Errorf("could not retrieve price series for %v: %w", universe[i], err)
		}
		if len(series) == 0 {
			return nil, fmt.Errorf("%w: %v has no data between %v and %v",
				ErrNoOverlappingHistory,
				universe[i],
				start.Format(common.SimpleTimeFormat),
				end.Format(common.SimpleTimeFormat))
		}
		raw[universe[i]] = series
		for j := range series {
			unionSet[series[j].Time] = struct{}{}
		}
		if series[0].Time.After(alignStart) {
			alignStart = series[0].Time
		}
	}

	timeline := make([]time.Time, 0, len(unionSet))
	for t := range unionSet {
		if t.Before(alignStart) {
			continue
		}
		timeline = append(timeline, t)
	}
	if len(timeline) == 0 {
		return nil, ErrNoOverlappingHistory
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Before(timeline[j])
	})

	f := &Feed{
		universe: append([]string(nil), universe...),
		timeline: timeline,
		series:   make(map[string]*alignedSeries, len(universe)),
	}
	for s, series := range raw {
		f.series[s] = &alignedSeries{bars: reindex(series, timeline)}
	}

	log.Debugf(log.Data, "aligned %v symbols onto %v timestamps between %v and %v",
		len(universe),
		len(timeline),
		timeline[0].Format(common.SimpleTimeFormat),
		timeline[len(timeline)-1].Format(common.SimpleTimeFormat))

	return f, nil
}

// reindex pads a native series onto the timeline by carrying the most
// recent bar forward across timestamps the symbol did not trade on
func reindex(series []Bar, timeline []time.Time) []Bar {
	aligned := make([]Bar, len(timeline))
	idx := -1
	for i := range timeline {
		for idx+1 < len(series) && !series[idx+1].Time.After(timeline[i]) {
			idx++
		}
		aligned[i] = series[idx]
		aligned[i].Time = timeline[i]
	}
	return aligned
}

// Next reveals the next aligned timestamp for every symbol in one atomic
// step and returns the market event for it. Returns nil, false once the
// timeline is exhausted; no further market events will ever be produced
func (f *Feed) Next() (*market.Market, bool) {
	if f.offset >= int64(len(f.timeline)) {
		f.exhausted = true
		return nil, false
	}
	for i := range f.universe {
		f.series[f.universe[i]].revealed++
	}
	f.offset++
	return &market.Market{
		Base: &event.Base{
			Offset: f.offset,
			Time:   f.timeline[f.offset-1],
		},
	}, true
}

// IsExhausted reports whether the feed has run out of aligned timestamps
func (f *Feed) IsExhausted() bool {
	return f.exhausted
}

// Universe returns the symbols the feed was constructed over
func (f *Feed) Universe() []string {
	return append([]string(nil), f.universe...)
}

// Offset returns how many aligned timestamps have been revealed
func (f *Feed) Offset() int64 {
	return f.offset
}

// CurrentTime returns the latest revealed aligned timestamp
func (f *Feed) CurrentTime() time.Time {
	if f.offset == 0 {
		return time.Time{}
	}
	return f.timeline[f.offset-1]
}

func (f *Feed) revealedSeries(symbol string) (*alignedSeries, error) {
	s, ok := f.series[symbol]
	if !ok {
		return nil, fmt.Errorf("%w '%v'", common.ErrUnknownSymbol, symbol)
	}
	return s, nil
}

// LatestBar returns the most recently revealed bar for a symbol
func (f *Feed) LatestBar(symbol string) (Bar, error) {
	s, err := f.revealedSeries(symbol)
	if err != nil {
		return Bar{}, err
	}
	if s.revealed == 0 {
		return Bar{}, fmt.Errorf("%w for %v", ErrNotEnoughData, symbol)
	}
	return s.bars[s.revealed-1], nil
}

// LatestBars returns the n most recently revealed bars for a symbol,
// oldest first. Requesting more bars than have been revealed is an error;
// the feed never fabricates data
func (f *Feed) LatestBars(symbol string, n int) ([]Bar, error) {
	s, err := f.revealedSeries(symbol)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > s.revealed {
		return nil, fmt.Errorf("%w for %v: requested %v of %v revealed bars",
			ErrNotEnoughData, symbol, n, s.revealed)
	}
	resp := make([]Bar, n)
	copy(resp, s.bars[s.revealed-n:s.revealed])
	return resp, nil
}

// LatestBarTime returns the timestamp of the most recently revealed bar
func (f *Feed) LatestBarTime(symbol string) (time.Time, error) {
	b, err := f.LatestBar(symbol)
	if err != nil {
		return time.Time{}, err
	}
	return b.Time, nil
}

// LatestBarValue returns one field of the most recently revealed bar
func (f *Feed) LatestBarValue(symbol string, field Field) (decimal.Decimal, error) {
	b, err := f.LatestBar(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return barValue(&b, field)
}

// LatestBarsValues returns one field across the n most recently revealed
// bars for a symbol, oldest first
func (f *Feed) LatestBarsValues(symbol string, field Field, n int) ([]decimal.Decimal, error) {
	bars, err := f.LatestBars(symbol, n)
	if err != nil {
		return nil, err
	}
	resp := make([]decimal.Decimal, len(bars))
	for i := range bars {
		resp[i], err = barValue(&bars[i], field)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func barValue(b *Bar, field Field) (decimal.Decimal, error) {
	switch field {
	case Open:
		return b.Open, nil
	case High:
		return b.High, nil
	case Low:
		return b.Low, nil
	case Close:
		return b.Close, nil
	case AdjClose:
		return b.AdjClose, nil
	case Volume:
		return b.Volume, nil
	default:
		return decimal.Zero, fmt.Errorf("%w '%v'", ErrInvalidField, field)
	}
}
