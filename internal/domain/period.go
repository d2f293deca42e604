package domain

import (
	"fmt"
	"time"
)

// Period é o seletor simbólico de intervalo usado pelo dashboard
type Period string

const (
	PeriodToday      Period = "today"
	PeriodYesterday  Period = "yesterday"
	PeriodLast7Days  Period = "last7days"
	PeriodLast30Days Period = "last30days"
	PeriodLast3Month Period = "last3months"
	PeriodLast6Month Period = "last6months"
	PeriodLastYear   Period = "lastyear"
)

// periodOrder mantém a ordem de exibição do dropdown do dashboard
var periodOrder = []Period{
	PeriodToday,
	PeriodYesterday,
	PeriodLast7Days,
	PeriodLast30Days,
	PeriodLast3Month,
	PeriodLast6Month,
	PeriodLastYear,
}

var periodLabels = map[Period]string{
	PeriodToday:      "Hoje",
	PeriodYesterday:  "Ontem",
	PeriodLast7Days:  "Últimos 7 dias",
	PeriodLast30Days: "Últimos 30 dias",
	PeriodLast3Month: "Últimos 3 meses",
	PeriodLast6Month: "Últimos 6 meses",
	PeriodLastYear:   "Último ano",
}

// ParsePeriod valida um seletor de período vindo da query string
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if _, ok := periodLabels[p]; !ok {
		return "", fmt.Errorf("período inválido: %q", s)
	}
	return p, nil
}

// Label retorna o rótulo em pt-BR exibido no dashboard
func (p Period) Label() string {
	return periodLabels[p]
}

func (p Period) String() string {
	return string(p)
}

// DateRange é um intervalo de datas fechado nas duas pontas
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains verifica se t cai dentro do intervalo, bordas incluídas
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Range resolve o seletor para um intervalo [início 00:00:00, fim
// 23:59:59.999...] ancorado em now, no fuso de referência informado.
// O relógio é sempre injetado pelo chamador para manter a resolução
// determinística.
func (p Period) Range(now time.Time, loc *time.Location) DateRange {
	now = now.In(loc)

	switch p {
	case PeriodToday:
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	case PeriodYesterday:
		yesterday := now.AddDate(0, 0, -1)
		return DateRange{Start: startOfDay(yesterday), End: endOfDay(yesterday)}
	case PeriodLast7Days:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -7)), End: endOfDay(now)}
	case PeriodLast30Days:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -30)), End: endOfDay(now)}
	case PeriodLast3Month:
		return DateRange{Start: startOfDay(now.AddDate(0, -3, 0)), End: endOfDay(now)}
	case PeriodLast6Month:
		return DateRange{Start: startOfDay(now.AddDate(0, -6, 0)), End: endOfDay(now)}
	case PeriodLastYear:
		return DateRange{Start: startOfDay(now.AddDate(0, -12, 0)), End: endOfDay(now)}
	}

	// Seletores desconhecidos são barrados em ParsePeriod; aqui o
	// fallback conservador é o dia corrente
	return DateRange{Start: startOfDay(now), End: endOfDay(now)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// PeriodOption é uma opção de período exposta para o dropdown do front
type PeriodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailablePeriods representa os períodos de filtragem suportados pela API
type AvailablePeriods struct {
	Periods []PeriodOption `json:"periods"`
}

// ListAvailablePeriods monta a lista de seletores na ordem de exibição
func ListAvailablePeriods() *AvailablePeriods {
	options := make([]PeriodOption, 0, len(periodOrder))
	for _, p := range periodOrder {
		options = append(options, PeriodOption{Value: p.String(), Label: p.Label()})
	}
	return &AvailablePeriods{Periods: options}
}
