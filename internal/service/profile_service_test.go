package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/numerology"
)

type mockProfileRepo struct {
	created []domain.StoredProfile
	latest  domain.StoredProfile
	err     error
}

func (m *mockProfileRepo) Create(ctx context.Context, profile domain.StoredProfile) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, profile)
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (domain.StoredProfile, error) {
	if m.err != nil {
		return domain.StoredProfile{}, m.err
	}
	return m.latest, nil
}

func (m *mockProfileRepo) LatestByUserID(ctx context.Context, userID string) (domain.StoredProfile, error) {
	if m.err != nil {
		return domain.StoredProfile{}, m.err
	}
	return m.latest, nil
}

func TestProfileService_Compute(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewProfileService(repo, numerology.NewDumper(t.TempDir(), zap.NewNop()), zap.NewNop())

	stored, err := svc.Compute(context.Background(), "user-1", "1990-01-01", "Иванов Иван")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("stored profile has no id")
	}
	if stored.Birthdate != "01.01.1990" {
		t.Fatalf("birthdate = %q, want normalized 01.01.1990", stored.Birthdate)
	}
	if stored.Data.Master.Arcane != 18 {
		t.Fatalf("master arcane = %d, want 18", stored.Data.Master.Arcane)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d profiles, want 1", len(repo.created))
	}
}

func TestProfileService_Compute_InvalidDate(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewProfileService(repo, nil, zap.NewNop())

	_, err := svc.Compute(context.Background(), "user-1", "31.02.2020", "Иванов Иван")
	var invalid *numerology.InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidDateError", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid input must not be persisted")
	}
}

func TestProfileService_Compute_StoreFailure(t *testing.T) {
	repo := &mockProfileRepo{err: errors.New("connection refused")}
	svc := NewProfileService(repo, nil, zap.NewNop())

	_, err := svc.Compute(context.Background(), "user-1", "01.01.1990", "Иванов Иван")
	if err == nil || !errors.Is(err, repo.err) {
		t.Fatalf("error = %v, want wrapped repo error", err)
	}
}

func TestProfileService_Compatibility(t *testing.T) {
	svc := NewProfileService(&mockProfileRepo{}, nil, zap.NewNop())

	result, err := svc.Compatibility(context.Background(),
		numerology.Person{Birthdate: "01.01.1990", FullName: "Иванов Иван"},
		numerology.Person{Birthdate: "14.03.1995", FullName: "КАРЛЮК ОЛЬГА ЕВГЕНЬЕВНА"},
	)
	if err != nil {
		t.Fatalf("Compatibility: %v", err)
	}
	if result.Scores.Percent != 84.5 {
		t.Fatalf("percent = %v, want 84.5", result.Scores.Percent)
	}
}
