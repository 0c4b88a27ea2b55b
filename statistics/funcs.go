package statistics

import (
	"errors"
	"math"
)

const (
	// DefaultPeriods is the annualisation factor for daily bar data
	DefaultPeriods float64 = 252
	// DefaultRiskFreeRate assumes no return on uninvested capital
	DefaultRiskFreeRate float64 = 0
)

var (
	// ErrNoReturns is returned when a calculation is requested over an empty series
	ErrNoReturns = errors.New("no returns provided")
	// ErrZeroVolatility is returned when a ratio would divide by zero volatility.
	// Surfaced as an error rather than letting NaN or Inf leak into results
	ErrZeroVolatility = errors.New("zero volatility")
)

// CAGR calculates the compound annual growth rate from a series of
// period-over-period returns, annualised by periods
func CAGR(returns []float64, periods float64) (float64, error) {
	if len(returns) == 0 {
		return 0, ErrNoReturns
	}
	product := 1.0
	for i := range returns {
		product *= 1 + returns[i]
	}
	return math.Pow(product, periods/float64(len(returns))) - 1, nil
}

// AnnualVolatility calculates the annualised standard deviation of a series
// of period-over-period returns
func AnnualVolatility(returns []float64, periods float64) (float64, error) {
	if len(returns) == 0 {
		return 0, ErrNoReturns
	}
	return sampleStandardDeviation(returns) * math.Sqrt(periods), nil
}

// SharpeRatio calculates the excess return per unit of annualised
// volatility. A flat return series has no volatility to divide by and is
// reported as ErrZeroVolatility
func SharpeRatio(returns []float64, periods, riskFreeRate float64) (float64, error) {
	growth, err := CAGR(returns, periods)
	if err != nil {
		return 0, err
	}
	volatility, err := AnnualVolatility(returns, periods)
	if err != nil {
		return 0, err
	}
	if volatility == 0 {
		return 0, ErrZeroVolatility
	}
	return (growth - riskFreeRate) / volatility, nil
}

// MaxDrawdown calculates the largest peak-to-trough fractional decline of
// the compounded equity curve implied by the return series
func MaxDrawdown(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, ErrNoReturns
	}
	value := 1.0
	runningMax := math.Inf(-1)
	worst := 1.0
	for i := range returns {
		value *= 1 + returns[i]
		if value > runningMax {
			runningMax = value
		}
		if ratio := value / runningMax; ratio < worst {
			worst = ratio
		}
	}
	return 1 - worst, nil
}

// sampleStandardDeviation measures dispersion relative to the mean using
// the sample based calculation
func sampleStandardDeviation(vals []float64) float64 {
	if len(vals) <= 1 {
		return 0
	}
	mean := arithmeticAverage(vals)
	var combined float64
	for i := range vals {
		combined += math.Pow(vals[i]-mean, 2)
	}
	return math.Sqrt(combined / (float64(len(vals)) - 1))
}

func arithmeticAverage(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for i := range vals {
		sum += vals[i]
	}
	return sum / float64(len(vals))
}
