package utils

import (
	"errors"
	"time"

	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("data inválida, use o formato AAAA-MM-DD")
	ErrInvalidDateRange = errors.New("data inicial posterior à data final")
	ErrDateRangeTooLong = errors.New("período maior que o permitido")
)

// ParseDate interpreta uma data AAAA-MM-DD em UTC. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &date, nil
}

// NormalizeDateRange converte `from`/`to` opcionais numa janela concreta em UTC.
// Sem `to`, usa o dia de `now`; sem `from`, volta DefaultWindowDays-1 dias a partir do fim.
// O início fica em 00:00:00.000 e o fim em 23:59:59.999.
func NormalizeDateRange(from, to string, now time.Time) (domain.DateRange, error) {
	end, err := ParseDate(to)
	if err != nil {
		return domain.DateRange{}, err
	}
	if end == nil {
		today := now.UTC()
		end = &today
	}

	start, err := ParseDate(from)
	if err != nil {
		return domain.DateRange{}, err
	}
	if start == nil {
		defaultStart := end.AddDate(0, 0, -(domain.DefaultWindowDays - 1))
		start = &defaultStart
	}

	dateRange := domain.DateRange{
		Start: StartOfDay(*start),
		End:   EndOfDay(*end),
	}

	if dateRange.Start.After(dateRange.End) {
		return domain.DateRange{}, ErrInvalidDateRange
	}

	if days := int(StartOfDay(dateRange.End).Sub(dateRange.Start).Hours()/24) + 1; days > domain.MaxWindowDays {
		return domain.DateRange{}, ErrDateRangeTooLong
	}

	return dateRange, nil
}

// NormalizeWindow é o NormalizeDateRange já com os códigos de API dos erros
func NormalizeWindow(from, to string, now time.Time) (domain.DateRange, error) {
	dateRange, err := NormalizeDateRange(from, to, now)
	switch {
	case errors.Is(err, ErrInvalidDateRange):
		return domain.DateRange{}, apiErrors.New(err, apiErrors.ErrInvalidDateRange, map[string]any{"from": from, "to": to})
	case errors.Is(err, ErrDateRangeTooLong):
		return domain.DateRange{}, apiErrors.New(err, apiErrors.ErrInvalidDateRange, map[string]any{
			"from":     from,
			"to":       to,
			"max_days": domain.MaxWindowDays,
		})
	case err != nil:
		return domain.DateRange{}, apiErrors.New(err, apiErrors.ErrInvalidFormat, map[string]any{"from": from, "to": to})
	}

	return dateRange, nil
}

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
