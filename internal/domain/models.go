package domain

import (
	"time"

	"numero-bot/internal/numerology"
)

// User es el usuario final del bot, identificado por su ID de Telegram.
type User struct {
	ID          string    `json:"id"`
	TelegramID  int64     `json:"telegram_id"`
	FullName    string    `json:"fio,omitempty"`
	Birthdate   string    `json:"birthdate,omitempty"` // DD.MM.YYYY
	Language    string    `json:"language"`
	PushEnabled bool      `json:"push_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoredProfile persiste un resultado del motor como dato estructurado
// opaco: el cálculo nunca se edita, solo se vuelve a computar.
type StoredProfile struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Birthdate string             `json:"birthdate"`
	FullName  string             `json:"fio"`
	Data      numerology.Profile `json:"data"`
	CreatedAt time.Time          `json:"created_at"`
}

// Tipos de reporte que vende el bot.
const (
	ReportTypeMini          = "mini"
	ReportTypeFull          = "full"
	ReportTypeCompatibility = "compatibility"
)

// Report registra un reporte generado: narrativa recibida del servicio de
// interpretación y, para reportes completos, el documento renderizado.
type Report struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Type      string    `json:"type"`
	Narrative string    `json:"narrative"`
	FilePath  string    `json:"file_path,omitempty"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription lleva la contabilidad de la suscripción semanal de pronósticos.
type Subscription struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Active      bool       `json:"active"`
	StartedAt   time.Time  `json:"started_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
