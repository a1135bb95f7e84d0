// Command hashi-capture reads a photographed bridges puzzle and prints
// its clue grid, optionally solving it in the same run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"hashi-capture/internal/capture"
	"hashi-capture/internal/config"
	"hashi-capture/internal/detect"
	"hashi-capture/internal/hashi"
	"hashi-capture/internal/imageio"
	"hashi-capture/internal/ocr"
	"hashi-capture/internal/session"
	"hashi-capture/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to puzzle photograph (TIFF, PNG, or JPEG)")
	solve := flag.Bool("solve", false, "Solve the captured grid and print the bridge layout")
	trace := flag.Bool("trace", false, "Log solver search steps to stderr (implies -solve)")
	save := flag.Bool("save", false, "Write a JSON capture record next to the image")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hashi-capture %s\n", version.String())
		return
	}
	if *imagePath == "" {
		fmt.Println("Usage: hashi-capture -image <path> [-solve] [-trace] [-save]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	img, err := imageio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	log.Printf("Loaded %s: %dx%d pixels", *imagePath, bounds.Dx(), bounds.Dy())

	engine := ocr.NewEngine(cfg.OCRParams())
	defer engine.Close()
	if err := engine.AwaitReady(); err != nil {
		fmt.Fprintf(os.Stderr, "OCR engine failed to initialize: %v\n", err)
		os.Exit(1)
	}
	log.Printf("OCR engine %s (language %s)", engine.State(), cfg.OCRLanguage)

	detector := detect.NewDetector(detect.DefaultDetectParams())

	g, err := capture.Run(img, detector, engine, cfg.FilterParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Capture failed: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Captured %dx%d grid", g.Rows(), g.Cols())

	gridText := g.String()
	fmt.Println(gridText)

	var solution string
	if *solve || *trace {
		opts := cfg.SolverOptions()
		if *trace {
			opts.Trace = os.Stderr
		}
		var solver capture.Solver = hashi.NewSolver(opts)

		solution, err = solver.Solve(gridText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Solve failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println(solution)
	}

	if *save {
		rec := session.New(*imagePath, img)
		rec.SetGrid(g)
		if solution != "" {
			rec.SetSolution(solution)
		}

		recordPath := session.RecordPath(*imagePath)
		if err := rec.Save(recordPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save capture record: %v\n", err)
			os.Exit(1)
		}
		log.Printf("Saved capture record %s", recordPath)
	}
}
