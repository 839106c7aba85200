package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/asaraswat/ecotrackify/internal/client/models"
)

const chartBarWidth = 40

var chartLabels = [3]string{"Transportation Emission", "Energy Consumption", "Waste Disposal"}

// ChartDataset returns the three category values in display order, the same
// dataset the web client feeds its pie chart.
func ChartDataset(b *models.Breakdown) [3]float64 {
	return [3]float64{b.TransportationEmission, b.EnergyConsumption, b.WasteDisposal}
}

// RenderBreakdown writes the total and a proportional bar per category.
// Values are displayed as provided by the backend; the total is not
// recomputed from the parts.
func RenderBreakdown(w io.Writer, b *models.Breakdown) {
	fmt.Fprintf(w, "Total Carbon Footprint: %g kg CO₂\n", b.Total)

	dataset := ChartDataset(b)
	sum := dataset[0] + dataset[1] + dataset[2]

	for i, label := range chartLabels {
		share := 0.0
		if sum > 0 {
			share = dataset[i] / sum
		}
		// The backend promises non-negative values, but a bad response must
		// not panic the view, so the fill is clamped to the bar.
		filled := int(share*chartBarWidth + 0.5)
		if filled < 0 {
			filled = 0
		}
		if filled > chartBarWidth {
			filled = chartBarWidth
		}
		bar := strings.Repeat("#", filled) + strings.Repeat(".", chartBarWidth-filled)
		fmt.Fprintf(w, "  %-24s [%s] %5.1f%%  (%g)\n", label, bar, share*100, dataset[i])
	}
}
