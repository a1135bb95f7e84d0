// Command regiontest runs island detection on a puzzle photograph
// without OCR and reports what each pipeline stage kept.
package main

import (
	"flag"
	"fmt"
	"os"

	"hashi-capture/internal/config"
	"hashi-capture/internal/detect"
	"hashi-capture/internal/grid"
	"hashi-capture/internal/imageio"
	"hashi-capture/internal/region"
	"hashi-capture/internal/render"
	"hashi-capture/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	imagePath := flag.String("image", "", "Path to puzzle photograph (TIFF, PNG, or JPEG)")
	overlayPath := flag.String("overlay", "", "Write an annotated PNG to this path")
	savePath := flag.String("save", "", "Write a JSON capture record to this path")
	minWidth := flag.Int("min-width", cfg.MinRegionWidth, "Minimum region width in pixels")
	minHeight := flag.Int("min-height", cfg.MinRegionHeight, "Minimum region height in pixels")
	minArea := flag.Int("min-area", cfg.MinRegionArea, "Minimum region area in pixels")
	maxDivisor := flag.Int("max-divisor", cfg.MaxAreaDivisor, "Reject regions larger than image area divided by this")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: regiontest -image <path> [-overlay out.png] [-save run.json]")
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	params := region.FilterParams{
		MinWidth:       *minWidth,
		MinHeight:      *minHeight,
		MinArea:        *minArea,
		MaxAreaDivisor: *maxDivisor,
	}
	fmt.Printf("Filter parameters: width>%d height>%d area>%d area<imageArea/%d\n",
		params.MinWidth, params.MinHeight, params.MinArea, params.MaxAreaDivisor)

	fmt.Printf("\n=== Detection ===\n")
	detector := detect.NewDetector(detect.DefaultDetectParams())
	rects, err := detector.DetectRegions(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Raw regions: %d\n", len(rects))

	candidates := region.Filter(rects, bounds.Dy(), bounds.Dx(), params)
	fmt.Printf("After size filter: %d\n", len(candidates))

	accepted := region.ResolveOverlaps(candidates)
	fmt.Printf("After overlap resolution: %d\n", len(accepted))

	fmt.Printf("\n%-6s %6s %6s %6s %6s %8s\n", "ID", "X", "Y", "W", "H", "Area")
	for _, c := range accepted {
		fmt.Printf("%-6d %6d %6d %6d %6d %8d\n",
			c.Index, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, c.Rect.Area())
	}

	var g *grid.Grid
	if len(accepted) > 0 {
		fmt.Printf("\n=== Grid preview (positions only) ===\n")
		islands := make([]grid.Island, len(accepted))
		for i, c := range accepted {
			islands[i] = grid.Island{X: c.Rect.X, Y: c.Rect.Y, Value: grid.Unknown}
		}

		g, err = grid.Reconstruct(islands)
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
	}

	if *overlayPath != "" {
		out := render.Overlay(img, rects, candidates, accepted, render.DefaultOptions())
		if g != nil {
			render.DrawLattice(out, g.XAxis.Positions, g.YAxis.Positions, render.LatticeColor)
		}

		encoded, err := imageio.EncodePNG(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode overlay: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*overlayPath, encoded, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote overlay %s\n", *overlayPath)
	}

	if *savePath != "" {
		rec := session.New(*imagePath, img)
		rec.RawRegions = len(rects)
		rec.SetIslands(accepted, nil)
		if g != nil {
			rec.SetGrid(g)
		}

		if err := rec.Save(*savePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save record: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote record %s\n", *savePath)
	}
}
