package domain

import "time"

// DefaultWindowDays é a janela padrão (em dias corridos, inclusive) usada quando
// `from` não é informado. Vale para dashboard, overview e payout.
const DefaultWindowDays = 30

// MaxWindowDays limita o tamanho de qualquer janela pedida pelo cliente
const MaxWindowDays = 366

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days retorna todos os dias da janela, à meia-noite UTC
func (r DateRange) Days() []time.Time {
	if r.Start.After(r.End) {
		return []time.Time{}
	}

	current := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)

	var days []time.Time
	for !current.After(last) {
		days = append(days, current)
		current = current.AddDate(0, 0, 1)
	}

	return days
}
