package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/stonefab/benchquote/internal/model"
	"github.com/stonefab/benchquote/internal/pricing"
)

const rule = "------------------------------------------------------------------------"

// printResult writes the itemized quote breakdown as plain text.
func printResult(w io.Writer, q model.Quote, result pricing.QuoteResult) {
	fmt.Fprintf(w, "Quote: %s (%s)\n", q.Name, q.ID)
	if q.Customer != "" {
		fmt.Fprintf(w, "Customer: %s\n", q.Customer)
	}
	fmt.Fprintln(w, rule)

	for i, pr := range result.Pieces {
		piece := q.FindPiece(pr.PieceID)
		header := fmt.Sprintf("%d. %s", i+1, pr.Label)
		if piece != nil {
			header += fmt.Sprintf("  [%s %.0f x %.0f x %.0f mm]",
				piece.ShapeType, piece.LengthMm, piece.WidthMm, piece.ThicknessMm)
		}
		fmt.Fprintln(w, header)

		if pr.Err != nil {
			fmt.Fprintf(w, "   CANNOT PRICE: %v\n", pr.Err)
			fmt.Fprintln(w, rule)
			continue
		}

		printBreakdown(w, pr.Breakdown)
		fmt.Fprintln(w, rule)
	}

	fmt.Fprintf(w, "QUOTE TOTAL: $%.2f\n", result.Total)
}

func printBreakdown(w io.Writer, bd *pricing.PieceBreakdown) {
	fab := bd.Fabrication
	printItem(w, "Cutting", fab.Cutting.Formula())
	printItem(w, "Polishing", fab.Polishing.Formula())
	for _, e := range fab.Edges {
		printItem(w, fmt.Sprintf("Edge %s (%s)", e.EdgeID, e.ProfileName), e.Formula())
	}
	for _, c := range fab.Cutouts {
		printItem(w, "Cutout "+c.Name, c.Formula())
	}
	printItem(w, "Lamination", fab.Lamination.Formula())

	if ob := bd.Oversize; ob != nil {
		if ob.IsOversize {
			printItem(w, fmt.Sprintf("Join %s x%d", ob.Strategy, ob.JoinCount),
				fmt.Sprintf("%.2f Lm x $%.2f/Lm = $%.2f", ob.JoinLengthLm, ob.JoinRate, ob.JoinCost))
			for _, s := range ob.Segments {
				fmt.Fprintf(w, "      segment %.0f x %.0f mm\n", s.LengthMm, s.WidthMm)
			}
		}
		if ob.GrainMatchRequested {
			printItem(w, "Grain match surcharge",
				fmt.Sprintf("%.0f%% of $%.2f = $%.2f", ob.SurchargeRate, ob.FabricationSubtotal, ob.Surcharge))
		}
	}

	if mb := bd.Materials; mb != nil {
		if mb.Basis == model.PerSlab {
			printItem(w, "Material "+mb.Name,
				fmt.Sprintf("%d slab(s) x $%.2f x %.1f%% = $%.2f", mb.SlabCount, mb.Rate, mb.SharePercent, mb.Total))
		} else {
			printItem(w, "Material "+mb.Name,
				fmt.Sprintf("%.2f Sqm x $%.2f/Sqm = $%.2f", mb.AdjustedAreaSqm, mb.Rate, mb.Total))
		}
	}
	printItem(w, "Installation", fab.Installation.Formula())

	for _, warn := range bd.Warnings {
		fmt.Fprintf(w, "   ! %s\n", warn.Message)
	}

	fmt.Fprintf(w, "   %-28s $%.2f\n", "PIECE TOTAL", bd.PieceTotal)
}

func printItem(w io.Writer, label, formula string) {
	if len(label) > 28 {
		label = label[:28]
	}
	fmt.Fprintf(w, "   %-28s %s\n", label, strings.TrimSpace(formula))
}
