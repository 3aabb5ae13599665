package services

import (
	"context"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// SubscriptionAPI is the subscription slice of the API client.
type SubscriptionAPI interface {
	SubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	CurrentSubscription(ctx context.Context) (*models.Subscription, error)
}

type SubscriptionService struct {
	api SubscriptionAPI
}

func NewSubscriptionService(api SubscriptionAPI) *SubscriptionService {
	return &SubscriptionService{api: api}
}

func (s *SubscriptionService) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return s.api.SubscriptionPlans(ctx)
}

func (s *SubscriptionService) Current(ctx context.Context) (*models.Subscription, error) {
	return s.api.CurrentSubscription(ctx)
}
