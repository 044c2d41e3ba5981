package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/interpret"
	"numero-bot/internal/numerology"
	"numero-bot/internal/repository"
)

// ErrSubscriptionInactive indica que el usuario canceló o nunca activó la
// suscripción semanal.
var ErrSubscriptionInactive = errors.New("subscription inactive")

// SubscriptionService lleva la suscripción semanal y genera el pronóstico
// para los suscriptores.
type SubscriptionService struct {
	subs     repository.SubscriptionRepository
	profiles repository.ProfileRepository
	interp   interpret.Interpreter
	logger   *zap.Logger
}

func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	profiles repository.ProfileRepository,
	interp interpret.Interpreter,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		profiles: profiles,
		interp:   interp,
		logger:   logger,
	}
}

// Subscribe activa (o reactiva) la suscripción del usuario.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID string) (domain.Subscription, error) {
	now := time.Now().UTC()
	sub := domain.Subscription{
		ID:        uuid.NewString(),
		UserID:    userID,
		Active:    true,
		StartedAt: now,
		CreatedAt: now,
	}
	if err := s.subs.Upsert(ctx, sub); err != nil {
		return domain.Subscription{}, fmt.Errorf("upsert subscription: %w", err)
	}
	return sub, nil
}

// Cancel desactiva la suscripción del usuario.
func (s *SubscriptionService) Cancel(ctx context.Context, userID string) error {
	return s.subs.Cancel(ctx, userID, time.Now().UTC())
}

// Get devuelve la suscripción del usuario.
func (s *SubscriptionService) Get(ctx context.Context, userID string) (domain.Subscription, error) {
	return s.subs.GetByUserID(ctx, userID)
}

// ListActive devuelve las suscripciones activas, para el proceso que
// distribuye los pronósticos semanales.
func (s *SubscriptionService) ListActive(ctx context.Context) ([]domain.Subscription, error) {
	return s.subs.ListActive(ctx)
}

// WeeklyForecast arma el pronóstico semanal a partir del último perfil
// calculado del usuario y su número de año personal.
func (s *SubscriptionService) WeeklyForecast(ctx context.Context, userID string, now time.Time) (string, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get subscription: %w", err)
	}
	if !sub.Active {
		return "", fmt.Errorf("%w: user %s", ErrSubscriptionInactive, userID)
	}

	stored, err := s.profiles.LatestByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("latest profile: %w", err)
	}

	personalYear, err := numerology.PersonalYear(stored.Birthdate, now.Year())
	if err != nil {
		return "", err
	}

	payload := map[string]any{
		"fio":           stored.FullName,
		"birthdate":     stored.Birthdate,
		"personal_year": personalYear,
		"profile":       stored.Data,
	}
	forecast, err := s.interp.WeeklyForecast(ctx, payload)
	if err != nil {
		// Sin narrativa externa el pronóstico degrada al dato del motor.
		s.logger.Warn("weekly forecast interpretation unavailable",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return fmt.Sprintf("Ваш аркан личного года: %d (%.1f%%)",
			personalYear, numerology.ArcanePercent(personalYear)), nil
	}
	return forecast, nil
}
