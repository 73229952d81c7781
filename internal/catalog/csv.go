package catalog

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/stacykim/disSat/internal/population"
)

// WriteCSV writes a realization as CSV with one row per satellite.
func WriteCSV(w io.Writer, props population.Properties) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mass", "c200", "mstar", "rhalf2d", "profile", "sigma_los"}); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for i := 0; i < props.Count(); i++ {
		row := []string{
			fmt.Sprintf("%.6e", props.Mass[i]),
			fmt.Sprintf("%.4f", props.C200[i]),
			fmt.Sprintf("%.6e", props.MStar[i]),
			fmt.Sprintf("%.4f", props.RHalf2D[i]),
			props.Profiles[i].String(),
			fmt.Sprintf("%.3f", props.SigmaLOS[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
