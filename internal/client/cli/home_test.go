package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asaraswat/ecotrackify/internal/client/models"
)

func TestHomeView_Submit_DisplaysEchoedBreakdown(t *testing.T) {
	fp := &fakeFootprints{SubmitRet: &models.Breakdown{
		TransportationEmission: 10, EnergyConsumption: 5, WasteDisposal: 2, Total: 17,
	}}

	var out bytes.Buffer
	v := NewHomeView(fp, rdr("y\n10\n5\n2\n"), &out, testLogger())

	require.NoError(t, v.Show(context.Background()))

	assert.Equal(t, StateSucceeded, v.State())
	assert.Equal(t, models.FootprintValues{TransportationEmission: 10, EnergyConsumption: 5, WasteDisposal: 2}, fp.LastValues)
	assert.Contains(t, out.String(), "Total Carbon Footprint: 17 kg CO₂")
	assert.Equal(t, [3]float64{10, 5, 2}, ChartDataset(fp.SubmitRet))
}

func TestHomeView_NegativeInput_WithheldUntilCorrected(t *testing.T) {
	fp := &fakeFootprints{SubmitRet: &models.Breakdown{Total: 4}}

	var out bytes.Buffer
	v := NewHomeView(fp, rdr("y\n-3\n3\n0\n1\n"), &out, testLogger())

	require.NoError(t, v.Show(context.Background()))

	// The negative entry is warned about and re-prompted, not submitted.
	assert.Contains(t, out.String(), "Values cannot be negative.")
	assert.Equal(t, models.FootprintValues{TransportationEmission: 3, EnergyConsumption: 0, WasteDisposal: 1}, fp.LastValues)
}

func TestHomeView_ShowsCachedBreakdownFirst(t *testing.T) {
	fp := &fakeFootprints{CachedRet: &models.Breakdown{
		TransportationEmission: 1, EnergyConsumption: 2, WasteDisposal: 3, Total: 6,
	}}

	var out bytes.Buffer
	v := NewHomeView(fp, rdr("n\n"), &out, testLogger())

	require.NoError(t, v.Show(context.Background()))

	assert.Contains(t, out.String(), "Total Carbon Footprint: 6 kg CO₂")
	assert.Zero(t, fp.SubmitCalls)
}

func TestHomeView_SubmitFailure_ReturnsToInput(t *testing.T) {
	fp := &fakeFootprints{SubmitErr: assert.AnError}

	var out bytes.Buffer
	v := NewHomeView(fp, rdr("y\n1\n1\n1\n"), &out, testLogger())

	require.NoError(t, v.Show(context.Background()))

	assert.Equal(t, StateFailed, v.State())
	assert.Contains(t, out.String(), "Failed to track carbon footprint. Please try again.")
}

func TestHomeView_EmptyFieldsCoerceToZero(t *testing.T) {
	fp := &fakeFootprints{SubmitRet: &models.Breakdown{}}

	var out bytes.Buffer
	v := NewHomeView(fp, rdr("y\n\n\n\n"), &out, testLogger())

	require.NoError(t, v.Show(context.Background()))

	assert.Equal(t, models.FootprintValues{}, fp.LastValues)
	assert.Equal(t, 1, fp.SubmitCalls)
}
