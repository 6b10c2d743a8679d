package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	orderdomain "coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	result *service.Result
	err    error
}

func (s stubGenerator) Generate(context.Context, string, string) (*service.Result, error) {
	return s.result, s.err
}

func TestGenerate(t *testing.T) {
	success := &service.Result{
		Rows: []domain.AggregateRow{{Code: "MDM", TotalValue: decimal.NewFromInt(90), UsageCount: 1}},
		Path: "/tmp/cupons_dia_2024-03-10_101010.xlsx",
	}

	tests := []struct {
		name    string
		gen     stubGenerator
		wantErr bool
		wantOut string
	}{
		{"success", stubGenerator{result: success}, false, "Arquivo 'cupons_dia_2024-03-10_101010.xlsx' salvo com sucesso.\n"},
		{"no data", stubGenerator{err: domain.ErrNoData}, false, "Nenhum cupom encontrado no período.\n"},
		{"http error", stubGenerator{err: &orderdomain.FetchError{StatusCode: 401, Body: "Unauthorized"}}, true, "Erro 401: Unauthorized\n"},
		{"missing dates", stubGenerator{err: domain.ErrMissingDates}, true, domain.MissingDatesMessage + "\n"},
		{"generic", stubGenerator{err: errors.New("disk full")}, true, "Erro: disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := generate(context.Background(), &out, tt.gen, "2024-03-10", "2024-03-10")

			if tt.wantErr {
				assert.ErrorIs(t, err, errReportFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "dev\n", out.String())
}
