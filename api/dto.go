/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures decoupling the engine's domain model from the API
  contract. Monetary amounts are serialized as fixed-point strings to
  keep clients away from float rounding.
*/
package api

import (
	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/scenario"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ScenarioDTO describes one runnable scenario.
type ScenarioDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RunRequest parameterizes a simulation run.
type RunRequest struct {
	StartYear       int    `json:"start_year,omitempty"`
	Years           int    `json:"years,omitempty"`
	FailurePolicy   string `json:"failure_policy,omitempty"` // "abort" (default) or "skip"
	IncludeTimeline bool   `json:"include_timeline,omitempty"`
}

// RunDTO is the outcome of a simulation run.
type RunDTO struct {
	RunID     string           `json:"run_id"`
	Scenario  string           `json:"scenario"`
	Executed  int              `json:"executed"`
	Skipped   int              `json:"skipped"`
	LastDate  string           `json:"last_date,omitempty"`
	Error     string           `json:"error,omitempty"`
	Summaries []YearSummaryDTO `json:"summaries"`
	Events    []EventDTO       `json:"events,omitempty"`
}

// EventDTO is one timeline event.
type EventDTO struct {
	Date        string `json:"date"`
	Account     string `json:"account,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	TaxEffect   string `json:"tax_effect,omitempty"`
}

// YearSummaryDTO is one year's per-account aggregates.
type YearSummaryDTO struct {
	Year     int                 `json:"year"`
	Accounts []AccountSummaryDTO `json:"accounts"`
}

type AccountSummaryDTO struct {
	Name          string                `json:"name"`
	Balance       string                `json:"balance"`
	Deposited     string                `json:"deposited"`
	Withdrawn     string                `json:"withdrawn"`
	ByDescription []DescriptionTotalDTO `json:"by_description,omitempty"`
}

type DescriptionTotalDTO struct {
	Description string `json:"description"`
	Total       string `json:"total"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func toEventDTO(e finance.Event) EventDTO {
	dto := EventDTO{
		Date:        e.Date.String(),
		Amount:      e.Amount.String(),
		Description: e.Description,
	}
	if e.Account != nil {
		dto.Account = e.Account.Name()
	}
	if e.TaxEffect != finance.TaxNone {
		dto.TaxEffect = string(e.TaxEffect)
	}
	return dto
}

func toYearSummaryDTO(s report.YearSummary) YearSummaryDTO {
	dto := YearSummaryDTO{Year: s.Year}
	for _, a := range s.Accounts {
		as := AccountSummaryDTO{
			Name:      a.Name,
			Balance:   a.Balance.String(),
			Deposited: a.Deposited.String(),
			Withdrawn: a.Withdrawn.String(),
		}
		for _, d := range a.ByDescription {
			as.ByDescription = append(as.ByDescription, DescriptionTotalDTO{
				Description: d.Description,
				Total:       d.Total.String(),
			})
		}
		dto.Accounts = append(dto.Accounts, as)
	}
	return dto
}

func toRunDTO(runID string, name string, res *scenario.Result, includeTimeline bool, runErr error) RunDTO {
	dto := RunDTO{
		RunID:    runID,
		Scenario: name,
		Executed: res.Run.Executed,
		Skipped:  res.Run.Skipped,
	}
	if !res.Run.LastDate.IsZero() {
		dto.LastDate = res.Run.LastDate.String()
	}
	if runErr != nil {
		dto.Error = runErr.Error()
	}
	for _, s := range res.Summaries {
		dto.Summaries = append(dto.Summaries, toYearSummaryDTO(s))
	}
	if includeTimeline {
		for _, e := range res.Timeline.Events() {
			dto.Events = append(dto.Events, toEventDTO(e))
		}
	}
	return dto
}
