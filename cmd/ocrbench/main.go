// Command ocrbench measures digit recognition accuracy over a labeled
// directory of island patches. The expected text is the file name up
// to the first underscore, so 7.png and 7_blurry.png both expect "7".
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arbovm/levenshtein"

	"hashi-capture/internal/capture"
	"hashi-capture/internal/config"
	"hashi-capture/internal/imageio"
	"hashi-capture/internal/ocr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	dir := flag.String("dir", "", "Directory of labeled patch images")
	flag.Parse()

	if *dir == "" {
		fmt.Println("Usage: ocrbench -dir <labeled-patches>")
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read directory: %v\n", err)
		os.Exit(1)
	}

	engine := ocr.NewEngine(cfg.OCRParams())
	defer engine.Close()
	if err := engine.AwaitReady(); err != nil {
		fmt.Fprintf(os.Stderr, "OCR engine failed to initialize: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-24s %8s %8s %6s %6s\n", "File", "Expected", "Raw", "Digit", "Dist")

	var total, correct, totalDist int
	for _, entry := range entries {
		if entry.IsDir() || !imageio.IsSupportedFormat(entry.Name()) {
			continue
		}

		label := labelOf(entry.Name())
		if label == "" {
			continue
		}

		img, err := imageio.Load(filepath.Join(*dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", entry.Name(), err)
			os.Exit(1)
		}

		raw, err := engine.RecognizeDigit(img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Recognition failed on %s: %v\n", entry.Name(), err)
			os.Exit(1)
		}

		digit := capture.DigitOf(raw)
		dist := levenshtein.Distance(label, raw)

		total++
		totalDist += dist
		if string(digit) == label {
			correct++
		}

		fmt.Printf("%-24s %8s %8q %6c %6d\n", entry.Name(), label, raw, digit, dist)
	}

	if total == 0 {
		fmt.Println("No labeled images found.")
		return
	}

	fmt.Printf("\n%d/%d digits correct (%.1f%%), mean edit distance %.2f\n",
		correct, total, 100*float64(correct)/float64(total),
		float64(totalDist)/float64(total))
}

// labelOf extracts the expected text from a file name: the stem up to
// the first underscore.
func labelOf(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.IndexByte(stem, '_'); i >= 0 {
		stem = stem[:i]
	}
	return stem
}
