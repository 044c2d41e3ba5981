package interpret

import (
	"strings"
	"testing"
)

func TestParseFullReport_Sections(t *testing.T) {
	text := "Введение в анализ.\n\nПервый блок.\n\nВторой блок.\n\nИтоговые рекомендации."
	got := ParseFullReport(text)

	if got.Introduction != "Введение в анализ." {
		t.Fatalf("introduction = %q", got.Introduction)
	}
	if got.LifePathDetailed != "Первый блок.\nВторой блок." {
		t.Fatalf("life path detailed = %q", got.LifePathDetailed)
	}
	if got.Recommendations != "Итоговые рекомендации." {
		t.Fatalf("recommendations = %q", got.Recommendations)
	}
}

func TestParseFullReport_ShortTextKeepsDefaults(t *testing.T) {
	got := ParseFullReport("Одинокий абзац.")
	if !strings.Contains(got.Introduction, "Персональный нумерологический анализ") {
		t.Fatalf("expected default introduction, got %q", got.Introduction)
	}

	empty := ParseFullReport("")
	if empty.Recommendations == "" {
		t.Fatalf("expected default recommendations")
	}
}

func TestParseCompatibilityReport_ScoreAndSections(t *testing.T) {
	text := "Совместимость пары: 84.5% — высокая.\n\nСильные стороны.\n\nТрудности.\n\nРекомендации."
	got := ParseCompatibilityReport(text)

	if got.Score != 84.5 {
		t.Fatalf("score = %v, want 84.5", got.Score)
	}
	if got.Intro != "Совместимость пары: 84.5% — высокая." {
		t.Fatalf("intro = %q", got.Intro)
	}
	if got.Strengths != "Сильные стороны." || got.Challenges != "Трудности." || got.Recommendations != "Рекомендации." {
		t.Fatalf("sections = %+v", got)
	}
}

func TestParseCompatibilityReport_DefaultScore(t *testing.T) {
	got := ParseCompatibilityReport("Без процентов тут.")
	if got.Score != 75 {
		t.Fatalf("score = %v, want default 75", got.Score)
	}
	if got.Intro != "Без процентов тут." {
		t.Fatalf("intro = %q", got.Intro)
	}
}
