package domain

import (
	"fmt"
	"time"
)

// State is the phase a report generation is in.
type State string

const (
	StateIdle       State = "IDLE"
	StateInProgress State = "IN_PROGRESS"
	StateSuccess    State = "SUCCESS"
	StateNoData     State = "NO_DATA"
	StateHTTPError  State = "HTTP_ERROR"
	StateError      State = "ERROR"
)

// MissingDatesMessage is shown when a shell submits without both days.
const MissingDatesMessage = "Selecione ambas as datas."

// Status is the user-facing outcome of the latest report generation.
type Status struct {
	State     State          `json:"state"`
	Message   string         `json:"message"`
	File      string         `json:"file,omitempty"`
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
	Rows      []AggregateRow `json:"rows,omitempty"`
	// Running is true while a generation holds the trigger.
	Running   bool      `json:"running"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IdleStatus is reported before any generation ran.
func IdleStatus() Status {
	return Status{State: StateIdle, UpdatedAt: time.Now()}
}

// InProgressStatus is published when a generation starts.
func InProgressStatus(startDate, endDate string) Status {
	return Status{
		State:     StateInProgress,
		Message:   "Gerando relatório...",
		StartDate: startDate,
		EndDate:   endDate,
		Running:   true,
		UpdatedAt: time.Now(),
	}
}

// SuccessStatus is published once the spreadsheet is saved.
func SuccessStatus(startDate, endDate, file string, rows []AggregateRow) Status {
	return Status{
		State:     StateSuccess,
		Message:   fmt.Sprintf("Arquivo '%s' salvo com sucesso.", file),
		File:      file,
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
		UpdatedAt: time.Now(),
	}
}

// NoDataStatus is published when no coupon passed acceptance.
func NoDataStatus(startDate, endDate string) Status {
	return Status{
		State:     StateNoData,
		Message:   "Nenhum cupom encontrado no período.",
		StartDate: startDate,
		EndDate:   endDate,
		UpdatedAt: time.Now(),
	}
}

// HTTPErrorStatus is published when the order API answered with an error status.
func HTTPErrorStatus(startDate, endDate string, statusCode int, body string) Status {
	return Status{
		State:     StateHTTPError,
		Message:   fmt.Sprintf("Erro %d: %s", statusCode, body),
		StartDate: startDate,
		EndDate:   endDate,
		UpdatedAt: time.Now(),
	}
}

// ErrorStatus is published for every other failure.
func ErrorStatus(startDate, endDate string, err error) Status {
	return Status{
		State:     StateError,
		Message:   fmt.Sprintf("Erro: %v", err),
		StartDate: startDate,
		EndDate:   endDate,
		UpdatedAt: time.Now(),
	}
}
