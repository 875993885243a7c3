package valueobject

import "fmt"

// PastTransactions is the customer's recorded transaction behaviour.
type PastTransactions struct {
	value string
}

var (
	PastTransactionsPositive = PastTransactions{value: "Positive"}
	PastTransactionsNeutral  = PastTransactions{value: "Neutral"}
	PastTransactionsNegative = PastTransactions{value: "Negative"}
)

// PastTransactionsFromString parses the value accepted for the given profile.
// Loans only know Positive and Negative.
func PastTransactionsFromString(profile Profile, s string) (PastTransactions, error) {
	switch s {
	case PastTransactionsPositive.value:
		return PastTransactionsPositive, nil
	case PastTransactionsNegative.value:
		return PastTransactionsNegative, nil
	case PastTransactionsNeutral.value:
		if profile.IsLoan() {
			return PastTransactions{}, fmt.Errorf("past transactions %q not accepted for %s profile", s, profile)
		}
		return PastTransactionsNeutral, nil
	default:
		return PastTransactions{}, fmt.Errorf("invalid past transactions: %q", s)
	}
}

func (p PastTransactions) String() string { return p.value }

func (p PastTransactions) IsZero() bool { return p.value == "" }

func (p PastTransactions) Equal(other PastTransactions) bool { return p.value == other.value }

// MarketTrend is the prevailing market condition at evaluation time.
type MarketTrend struct {
	value string
}

var (
	MarketTrendFavorable   = MarketTrend{value: "Favorable"}
	MarketTrendNeutral     = MarketTrend{value: "Neutral"}
	MarketTrendUnfavorable = MarketTrend{value: "Unfavorable"}
)

// MarketTrendFromString parses a market trend.
func MarketTrendFromString(s string) (MarketTrend, error) {
	switch s {
	case MarketTrendFavorable.value:
		return MarketTrendFavorable, nil
	case MarketTrendNeutral.value:
		return MarketTrendNeutral, nil
	case MarketTrendUnfavorable.value:
		return MarketTrendUnfavorable, nil
	default:
		return MarketTrend{}, fmt.Errorf("invalid market trend: %q", s)
	}
}

func (m MarketTrend) String() string { return m.value }

func (m MarketTrend) IsZero() bool { return m.value == "" }

func (m MarketTrend) Equal(other MarketTrend) bool { return m.value == other.value }
