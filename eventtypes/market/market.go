package market

// IsMarket returns whether the event is a market event
func (m *Market) IsMarket() bool {
	return true
}
