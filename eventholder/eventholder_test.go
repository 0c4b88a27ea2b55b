package eventholder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
)

func TestNextEventEmpty(t *testing.T) {
	t.Parallel()
	h := Holder{}
	assert.Nil(t, h.NextEvent())
}

func TestFIFOOrdering(t *testing.T) {
	t.Parallel()
	h := Holder{}
	first := &signal.Signal{Base: &event.Base{Symbol: "AAPL"}}
	second := &signal.Signal{Base: &event.Base{Symbol: "MSFT"}}
	third := &signal.Signal{Base: &event.Base{Symbol: "GOOG"}}
	h.AppendEvent(first)
	h.AppendEvent(second)
	h.AppendEvent(third)

	assert.Equal(t, first, h.NextEvent())
	assert.Equal(t, second, h.NextEvent())
	assert.Equal(t, third, h.NextEvent())
	assert.Nil(t, h.NextEvent())
}

func TestReset(t *testing.T) {
	t.Parallel()
	h := Holder{}
	h.AppendEvent(&signal.Signal{Base: &event.Base{}})
	h.Reset()
	assert.Nil(t, h.NextEvent())
}
