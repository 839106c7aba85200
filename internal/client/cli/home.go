package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/client/services"
	"github.com/asaraswat/ecotrackify/internal/logging"
)

// HomeView is the emission calculator: it renders the cached breakdown when
// one exists, collects three non-negative figures, and on a successful
// submission replaces the cached and displayed breakdown wholesale.
type HomeView struct {
	footprints services.FootprintService
	reader     *bufio.Reader
	out        io.Writer
	log        logging.Logger

	state ViewState
}

func NewHomeView(footprints services.FootprintService, reader *bufio.Reader, out io.Writer, log logging.Logger) *HomeView {
	return &HomeView{footprints: footprints, reader: reader, out: out, log: log}
}

// State returns the view's position in its submit cycle.
func (v *HomeView) State() ViewState { return v.state }

func (v *HomeView) Show(ctx context.Context) error {
	fmt.Fprintln(v.out, "-- Emission Calculator --")

	cached, err := v.footprints.Cached(ctx)
	if err != nil {
		v.log.Warn(ctx, "cached breakdown unavailable", "error", err)
	}
	if cached != nil {
		RenderBreakdown(v.out, cached)
	}

	answer, err := getSimpleText(v.reader, "Submit new figures? (y/n)", v.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	values, err := v.collectValues()
	if err != nil {
		return err
	}

	v.state = StateSubmitting
	breakdown, err := v.footprints.Submit(ctx, *values)
	if err != nil {
		v.state = StateFailed
		v.log.Debug(ctx, "footprint submission failed", "error", err)
		fmt.Fprintln(v.out, "Failed to track carbon footprint. Please try again.")
		return nil
	}

	v.state = StateSucceeded
	RenderBreakdown(v.out, breakdown)
	return nil
}

func (v *HomeView) collectValues() (*models.FootprintValues, error) {
	transportation, err := GetNonNegativeNumber(v.reader, "Transportation Emission", v.out)
	if err != nil {
		return nil, err
	}
	energy, err := GetNonNegativeNumber(v.reader, "Energy Consumption", v.out)
	if err != nil {
		return nil, err
	}
	waste, err := GetNonNegativeNumber(v.reader, "Waste Disposal", v.out)
	if err != nil {
		return nil, err
	}
	return &models.FootprintValues{
		TransportationEmission: transportation,
		EnergyConsumption:      energy,
		WasteDisposal:          waste,
	}, nil
}
