package domain

type TermPreference string

const (
	MinimizeInterest TermPreference = "minimize_interest"
	MinimizePayment  TermPreference = "minimize_payment"
	Balanced         TermPreference = "balanced"
)

type TermRecommendationInput struct {
	Amount            float64
	InterestRate      float64
	MinTermMonths     int
	MaxTermMonths     int
	MaxMonthlyPayment float64
	Preference        TermPreference
}

type TermRecommendation struct {
	TermMonths     int
	MonthlyPayment float64
	TotalInterest  float64
	Score          float64
	Reason         string
}

type TermRecommendationResult struct {
	RecommendedTerm int
	Recommendations []TermRecommendation
}
