package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/numerology"
	"numero-bot/internal/repository"
)

// ProfileService ejecuta el motor, persiste el resultado y deja el volcado
// de depuración. El motor es puro; los efectos viven acá.
type ProfileService struct {
	profiles repository.ProfileRepository
	dumper   *numerology.Dumper
	logger   *zap.Logger
}

func NewProfileService(
	profiles repository.ProfileRepository,
	dumper *numerology.Dumper,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		dumper:   dumper,
		logger:   logger,
	}
}

// Compute calcula el perfil y lo guarda asociado al usuario. Una fecha
// inválida se devuelve tal cual para que el handler la distinga; el fallo
// del volcado solo se registra.
func (s *ProfileService) Compute(ctx context.Context, userID, birthdate, fullName string) (domain.StoredProfile, error) {
	profile, err := numerology.ComputeProfile(birthdate, fullName)
	if err != nil {
		return domain.StoredProfile{}, err
	}

	stored := domain.StoredProfile{
		ID:        uuid.NewString(),
		UserID:    userID,
		Birthdate: profile.Birthdate,
		FullName:  profile.FullName,
		Data:      *profile,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.profiles.Create(ctx, stored); err != nil {
		return domain.StoredProfile{}, fmt.Errorf("store profile: %w", err)
	}

	if path := s.dumper.DumpProfile(profile); path != "" {
		s.logger.Info("calculation dumped", zap.String("path", path))
	}
	return stored, nil
}

// Compatibility calcula la pareja y deja el volcado correspondiente. El
// resultado no se persiste: se recalcula bajo demanda.
func (s *ProfileService) Compatibility(ctx context.Context, a, b numerology.Person) (*numerology.Compatibility, error) {
	result, err := numerology.ComputeCompatibility(a, b)
	if err != nil {
		return nil, err
	}

	if path := s.dumper.DumpCompatibility(result); path != "" {
		s.logger.Info("compatibility dumped", zap.String("path", path))
	}
	return result, nil
}
