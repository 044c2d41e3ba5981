package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/service"
)

type mockProfileRepo struct {
	created []domain.StoredProfile
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.StoredProfile) error {
	m.created = append(m.created, profile)
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.StoredProfile, error) {
	for _, p := range m.created {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.StoredProfile{}, pgx.ErrNoRows
}

func (m *mockProfileRepo) LatestByUserID(_ context.Context, userID string) (domain.StoredProfile, error) {
	for i := len(m.created) - 1; i >= 0; i-- {
		if m.created[i].UserID == userID {
			return m.created[i], nil
		}
	}
	return domain.StoredProfile{}, pgx.ErrNoRows
}

func newNumerologyRouter(repo *mockProfileRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewProfileService(repo, nil, zap.NewNop())
	handler := NewNumerologyHandler(zap.NewNop(), svc)

	r := gin.New()
	r.POST("/profile", handler.ComputeProfile)
	r.POST("/compatibility", handler.ComputeCompatibility)
	return r
}

func TestNumerologyHandler_ComputeProfile(t *testing.T) {
	repo := &mockProfileRepo{}
	r := newNumerologyRouter(repo)

	body, _ := json.Marshal(map[string]string{
		"user_id":   "u1",
		"birthdate": "1990-01-01",
		"fio":       "Иванов Иван",
	})
	req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Profile domain.StoredProfile `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Profile.Birthdate != "01.01.1990" {
		t.Fatalf("birthdate = %q, want normalized 01.01.1990", resp.Profile.Birthdate)
	}
	if resp.Profile.Data.Master.Arcane != 18 {
		t.Fatalf("master arcane = %d, want 18", resp.Profile.Data.Master.Arcane)
	}
	if len(repo.created) != 1 {
		t.Fatalf("stored %d profiles, want 1", len(repo.created))
	}
}

func TestNumerologyHandler_ComputeProfile_InvalidDate(t *testing.T) {
	repo := &mockProfileRepo{}
	r := newNumerologyRouter(repo)

	body, _ := json.Marshal(map[string]string{
		"user_id":   "u1",
		"birthdate": "31.02.2020",
		"fio":       "Иванов Иван",
	})
	req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid date must not be persisted")
	}
}

func TestNumerologyHandler_ComputeCompatibility(t *testing.T) {
	r := newNumerologyRouter(&mockProfileRepo{})

	body, _ := json.Marshal(map[string]any{
		"person1": map[string]string{"birthdate": "01.01.1990", "fio": "Иванов Иван"},
		"person2": map[string]string{"birthdate": "14.03.1995", "fio": "КАРЛЮК ОЛЬГА ЕВГЕНЬЕВНА"},
	})
	req := httptest.NewRequest(http.MethodPost, "/compatibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Compatibility struct {
			Scores struct {
				Percent float64 `json:"percent"`
			} `json:"compatibility"`
			KarmicConnection bool `json:"karmic_connection"`
		} `json:"compatibility"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Compatibility.Scores.Percent != 84.5 {
		t.Fatalf("percent = %v, want 84.5", resp.Compatibility.Scores.Percent)
	}
}

func TestNumerologyHandler_ComputeCompatibility_ReportsWhichPerson(t *testing.T) {
	r := newNumerologyRouter(&mockProfileRepo{})

	body, _ := json.Marshal(map[string]any{
		"person1": map[string]string{"birthdate": "01.01.1990", "fio": "Иванов Иван"},
		"person2": map[string]string{"birthdate": "не дата", "fio": "А"},
	})
	req := httptest.NewRequest(http.MethodPost, "/compatibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "second person") {
		t.Fatalf("error should name the second person: %s", rec.Body.String())
	}
}
