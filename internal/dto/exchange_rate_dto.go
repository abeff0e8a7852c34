package dto

import (
	"github.com/SscSPs/remittance_advisor/internal/core/domain"
)

// ExchangeRateQuery holds the query parameters of the rate proxy endpoint.
type ExchangeRateQuery struct {
	From string `form:"from" binding:"required,currency"`
	To   string `form:"to" binding:"required,currency"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ExchangeRateResponse is the rate payload browser clients expect: the rate keyed
// by the quote currency.
type ExchangeRateResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
	Date    string             `json:"date"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	date := "latest"
	if !rate.IsCurrent() {
		date = rate.Date.Format(domain.DateLayout)
	}
	return ExchangeRateResponse{
		Success: true,
		Rates:   map[string]float64{rate.Quote.String(): rate.Rate},
		Date:    date,
	}
}
