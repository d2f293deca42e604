package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBucket agrega receita, custo e lucro de um dia do período filtrado.
// É dado derivado, recalculado a cada requisição e nunca persistido.
type DailyBucket struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlyBucket agrega receita, custo e lucro de um mês
type MonthlyBucket struct {
	Month   string          `json:"month"` // formato 01-2006
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// RevenueSummary alimenta os cards de visão geral do dashboard
type RevenueSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	OrdersCount   int             `json:"orders_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// RevenueReport é a resposta completa da consulta de receita por período
type RevenueReport struct {
	Period  Period           `json:"period"`
	GroupBy string           `json:"group_by"`
	Summary *RevenueSummary  `json:"summary"`
	Daily   []*DailyBucket   `json:"daily,omitempty"`
	Monthly []*MonthlyBucket `json:"monthly,omitempty"`
}
