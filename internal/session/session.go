// Package session persists capture runs as JSON records.
package session

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"hashi-capture/internal/grid"
	"hashi-capture/internal/region"
	"hashi-capture/pkg/geometry"
)

const recordVersion = 1

// IslandRecord is one accepted region and, when OCR ran, the text
// recognized inside it.
type IslandRecord struct {
	Rect  geometry.RectInt `json:"rect"`
	Value string           `json:"value,omitempty"`
}

// Record captures one pipeline run over one photograph.
type Record struct {
	Version     int       `json:"version"`
	ID          string    `json:"id"`
	Created     time.Time `json:"created"`
	SourcePath  string    `json:"source_image,omitempty"`
	ImageWidth  int       `json:"image_width"`
	ImageHeight int       `json:"image_height"`

	RawRegions int            `json:"raw_regions,omitempty"`
	Islands    []IslandRecord `json:"islands,omitempty"`

	Rows     int    `json:"rows,omitempty"`
	Cols     int    `json:"cols,omitempty"`
	GridText string `json:"grid_text,omitempty"`

	Solution string `json:"solution,omitempty"`
}

// New creates a record for a run over the given photograph.
func New(sourcePath string, img image.Image) *Record {
	bounds := img.Bounds()
	return &Record{
		Version:     recordVersion,
		ID:          uuid.New().String(),
		Created:     time.Now(),
		SourcePath:  sourcePath,
		ImageWidth:  bounds.Dx(),
		ImageHeight: bounds.Dy(),
	}
}

// SetGrid stores the reconstructed grid.
func (r *Record) SetGrid(g *grid.Grid) {
	r.Rows = g.Rows()
	r.Cols = g.Cols()
	r.GridText = g.String()
}

// SetIslands stores the accepted regions. values holds the recognized
// text per region in the same order; pass nil when OCR did not run.
func (r *Record) SetIslands(accepted []region.Candidate, values []string) {
	r.Islands = make([]IslandRecord, len(accepted))
	for i, c := range accepted {
		rec := IslandRecord{Rect: c.Rect}
		if i < len(values) {
			rec.Value = values[i]
		}
		r.Islands[i] = rec
	}
}

// SetSolution stores a rendered solver result.
func (r *Record) SetSolution(s string) {
	r.Solution = s
}

// Load reads a record from a JSON file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// Save writes the record to a file.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RecordPath derives the default record path for a source image: the
// image path with its extension replaced by _capture.json.
func RecordPath(imagePath string) string {
	base := imagePath[:len(imagePath)-len(filepath.Ext(imagePath))]
	return base + "_capture.json"
}
