package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/asaraswat/ecotrackify/internal/client/models"
	"github.com/asaraswat/ecotrackify/internal/client/services"
	"github.com/asaraswat/ecotrackify/internal/client/validation"
	"github.com/asaraswat/ecotrackify/internal/logging"
)

const invalidTipMessage = "Invalid tip format. Please provide a meaningful tip in paragraph format, " +
	"at least 20 characters long, starting with a capital letter and ending with proper punctuation."

// TipsView lists community tips and accepts new ones. The list is fetched
// once, on the first successful show; a tip added later is appended in place
// rather than refetching the whole list.
type TipsView struct {
	tips   services.TipService
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	state  ViewState
	list   []models.Tip
	loaded bool
}

func NewTipsView(tips services.TipService, reader *bufio.Reader, out io.Writer, log logging.Logger) *TipsView {
	return &TipsView{tips: tips, reader: reader, out: out, log: log}
}

// State returns the view's position in its submit cycle.
func (v *TipsView) State() ViewState { return v.state }

// Tips returns the currently displayed list.
func (v *TipsView) Tips() []models.Tip { return v.list }

func (v *TipsView) Show(ctx context.Context) error {
	fmt.Fprintln(v.out, "-- Eco-Friendly Tips --")

	if !v.loaded {
		list, err := v.tips.List(ctx)
		if err != nil {
			v.log.Debug(ctx, "tip list fetch failed", "error", err)
		} else {
			v.list = list
			v.loaded = true
		}
	}

	for i, tip := range v.list {
		fmt.Fprintf(v.out, "Tip %d: %s\n", i+1, tip.Message)
		fmt.Fprintf(v.out, "  Created at: %s\n", tip.CreatedAt.Local().Format("1/2/2006, 3:04:05 PM"))
	}

	answer, err := getSimpleText(v.reader, "Add a new tip? (y/n)", v.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	message, err := getSimpleText(v.reader, "Tip", v.out)
	if err != nil {
		return err
	}
	if message == "" {
		v.state = StateFailed
		fmt.Fprintln(v.out, "Tip cannot be empty!")
		return nil
	}
	if !validation.IsValidTip(message) {
		v.state = StateFailed
		fmt.Fprintln(v.out, invalidTipMessage)
		return nil
	}

	v.state = StateSubmitting
	tip, err := v.tips.Add(ctx, strings.TrimSpace(message))
	if err != nil {
		v.state = StateFailed
		v.log.Debug(ctx, "tip submission failed", "error", err)
		fmt.Fprintln(v.out, "Failed to add tip, please try again.")
		return nil
	}

	v.state = StateSucceeded
	v.list = append(v.list, *tip)
	fmt.Fprintf(v.out, "Tip %d: %s\n", len(v.list), tip.Message)
	return nil
}
