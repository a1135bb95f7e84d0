// Command gridtest rebuilds a clue grid from a saved capture record,
// so lattice inference can be tuned without rerunning detection.
package main

import (
	"flag"
	"fmt"
	"os"

	"hashi-capture/internal/capture"
	"hashi-capture/internal/grid"
	"hashi-capture/internal/session"
)

func main() {
	recordPath := flag.String("record", "", "Path to a JSON capture record")
	flag.Parse()

	if *recordPath == "" {
		fmt.Println("Usage: gridtest -record <run.json>")
		os.Exit(1)
	}

	rec, err := session.Load(*recordPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load record: %v\n", err)
		os.Exit(1)
	}
	if len(rec.Islands) == 0 {
		fmt.Fprintf(os.Stderr, "Record %s has no islands\n", *recordPath)
		os.Exit(1)
	}
	fmt.Printf("Record %s: %d islands from a %dx%d image\n",
		rec.ID, len(rec.Islands), rec.ImageWidth, rec.ImageHeight)

	islands := make([]grid.Island, len(rec.Islands))
	for i, island := range rec.Islands {
		islands[i] = grid.Island{
			X:     island.Rect.X,
			Y:     island.Rect.Y,
			Value: capture.DigitOf(island.Value),
		}
	}

	g, err := grid.Reconstruct(islands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reconstruction failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid: %d rows x %d cols\n", g.Rows(), g.Cols())
	for _, axis := range []struct {
		name string
		a    grid.Axis
	}{{"x", g.XAxis}, {"y", g.YAxis}} {
		q := axis.a.Quality()
		fmt.Printf("%s axis: unit=%.1f mean=%.1f stddev=%.2f residual=%.3f spans=%d\n",
			axis.name, q.Unit, q.MeanSpacing, q.SpacingStdDev, q.MaxResidual, q.Spans)
		if q.Suspect() {
			fmt.Printf("  warning: %s spacing drifts from the lattice; check perspective\n", axis.name)
		}
	}

	fmt.Println()
	fmt.Println(g.String())

	if rec.GridText != "" {
		if g.String() == rec.GridText {
			fmt.Println("\nMatches the grid stored in the record.")
		} else {
			fmt.Println("\nDiffers from the grid stored in the record:")
			fmt.Println(rec.GridText)
		}
	}
}
