package models

type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "FREE"
	SubscriptionPremium SubscriptionType = "PREMIUM"
)

type Subscription struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"userId"`
	Type            SubscriptionType `json:"type"`
	StartDate       string           `json:"startDate"`
	EndDate         string           `json:"endDate"`
	BookLimit       int              `json:"bookLimit"`
	DurationDays    int              `json:"durationDays"`
	DailyFineAmount float64          `json:"dailyFineAmount"`
	Price           float64          `json:"price"`
	Active          bool             `json:"active"`
}

// SubscriptionPlan describes a purchasable tier.
type SubscriptionPlan struct {
	Type            SubscriptionType `json:"type"`
	Name            string           `json:"name"`
	BookLimit       int              `json:"bookLimit"`
	DurationDays    int              `json:"durationDays"`
	DailyFineAmount float64          `json:"dailyFineAmount"`
	Price           float64          `json:"price"`
}
