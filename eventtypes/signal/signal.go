package signal

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
)

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Direction) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Direction {
	return s.Direction
}

// GetStrategyID returns the id of the strategy that raised the signal
func (s *Signal) GetStrategyID() string {
	return s.StrategyID
}
