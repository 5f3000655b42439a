package services

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
)

type identityService struct {
	users    repositories.UserRepositoryInterface
	metrics  MetricsRecorderInterface
	activity ActivityLoggerInterface
}

// NewIdentityService creates a new IdentityServiceInterface instance
func NewIdentityService(
	users repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) IdentityServiceInterface {
	return &identityService{
		users:    users,
		metrics:  metrics,
		activity: activity,
	}
}

// ResolveUser finds the local user for a verified session, creating it on
// first sight. Nil claims resolve to a nil user.
func (s *identityService) ResolveUser(ctx context.Context, claims *models.SessionClaims) (*models.User, error) {
	if claims == nil {
		return nil, nil
	}

	externalID := claims.ExternalID()
	user, err := s.users.GetByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{ExternalID: externalID}
	if models.IsValidEmail(claims.Email) {
		user.Email = claims.Email
	}
	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("failed to provision user: %w", err)
		}

		// Another request provisioned the same subject first
		existing, lookupErr := s.users.GetByExternalID(ctx, externalID)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to look up user after conflict: %w", lookupErr)
		}
		return existing, nil
	}

	s.metrics.IncrementCounter(MetricUserProvisioned, nil)
	s.activity.LogUserProvisioned(ctx, user)

	return user, nil
}
