package interpret

import "context"

// MockInterpreter permite tests sin llamar al servicio real.
type MockInterpreter struct {
	Response string
	Err      error
	Calls    []string
}

func (m *MockInterpreter) MiniReport(ctx context.Context, payload any) (string, error) {
	m.Calls = append(m.Calls, "mini")
	return m.Response, m.Err
}

func (m *MockInterpreter) FullReport(ctx context.Context, payload any) (string, error) {
	m.Calls = append(m.Calls, "full")
	return m.Response, m.Err
}

func (m *MockInterpreter) Compatibility(ctx context.Context, payload any) (string, error) {
	m.Calls = append(m.Calls, "compatibility")
	return m.Response, m.Err
}

func (m *MockInterpreter) WeeklyForecast(ctx context.Context, payload any) (string, error) {
	m.Calls = append(m.Calls, "forecast")
	return m.Response, m.Err
}
