package internal

import (
	"fmt"
	"strings"

	"storeops/internal/domain"
)

// Metric selects which of the two goal metrics a pipeline stage is
// operating on. Sales and transactions are always allocated by
// independent calls - ATV is calculated from the results, never
// targeted.
type Metric string

const (
	Metric_Sales        Metric = "NET_SALES"
	Metric_Transactions Metric = "TRANSACTIONS"
)

func NewMetric(s string) (*Metric, error) {
	m := map[string]Metric{
		"NET_SALES":    Metric_Sales,
		"TRANSACTIONS": Metric_Transactions,
	}
	for k, v := range m {
		if strings.EqualFold(
			strings.ReplaceAll(k, "_", ""),
			strings.ReplaceAll(s, "_", ""),
		) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known metric", s)
}

func (m Metric) ValueOf(row domain.StoreDay) float64 {
	if m == Metric_Transactions {
		return float64(row.Transactions)
	}
	return row.NetSales
}
