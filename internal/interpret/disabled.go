package interpret

import (
	"context"
	"errors"
)

// Disabled responde siempre con error; se usa cuando el webhook externo no
// está configurado o el servicio corre en modo de prueba. Los servicios que
// lo consumen degradan al resumen del motor.
type Disabled struct {
	reason string
}

// NewDisabled crea un Interpreter deshabilitado con el motivo dado.
func NewDisabled(reason string) *Disabled {
	if reason == "" {
		reason = "interpreter not configured"
	}
	return &Disabled{reason: reason}
}

func (d *Disabled) MiniReport(context.Context, any) (string, error)     { return "", d.err() }
func (d *Disabled) FullReport(context.Context, any) (string, error)     { return "", d.err() }
func (d *Disabled) Compatibility(context.Context, any) (string, error)  { return "", d.err() }
func (d *Disabled) WeeklyForecast(context.Context, any) (string, error) { return "", d.err() }

func (d *Disabled) err() error {
	return errors.New(d.reason)
}
