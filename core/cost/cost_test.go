package cost

import (
	"strings"
	"testing"
)

func TestToolMetricsString(t *testing.T) {
	metrics := ToolMetrics{
		Amount:                  0.002,
		Currency:                "USD",
		CostDescription:         "per page scraped",
		Accuracy:                0.9,
		AverageDurationInMillis: 6000,
	}

	got := metrics.String()
	for _, want := range []string{"0.002000 USD", "per page scraped", "accuracy 90.0%", "~6000ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestToolMetricsString_Defaults(t *testing.T) {
	got := ToolMetrics{Amount: 0.5}.String()
	if got != "0.500000 USD" {
		t.Errorf("expected bare amount with default currency, got %q", got)
	}
}
