// Package report writes one-shot run output: a JSON pricing summary and
// a CSV of the payoff/P&L curve, one row per swept spot.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// WriteSummaryJSON writes the pricing (or implied-vol) summary to
// summary.json under outdir.
func WriteSummaryJSON(v any, outdir string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "summary.json"), b, 0644)
}

// WriteCurveCSV writes the swept curve to curve.csv under outdir.
func WriteCurveCSV(points []pricing.CurvePoint, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "curve.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"spot", "call_payoff_pnl", "put_payoff_pnl", "call_current_pnl", "put_current_pnl", "call_intrinsic", "put_intrinsic", "call_delta", "put_delta", "gamma", "vega"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			fmt.Sprintf("%.4f", p.Spot),
			fmt.Sprintf("%.4f", p.CallPayoffPnL),
			fmt.Sprintf("%.4f", p.PutPayoffPnL),
			fmt.Sprintf("%.4f", p.CallCurrentPnL),
			fmt.Sprintf("%.4f", p.PutCurrentPnL),
			fmt.Sprintf("%.4f", p.CallIntrinsic),
			fmt.Sprintf("%.4f", p.PutIntrinsic),
			fmt.Sprintf("%.6f", p.CallDelta),
			fmt.Sprintf("%.6f", p.PutDelta),
			fmt.Sprintf("%.6f", p.Gamma),
			fmt.Sprintf("%.6f", p.Vega),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
