// Package detect locates candidate island regions in a puzzle
// photograph using contour analysis.
package detect

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"hashi-capture/pkg/geometry"
)

// DetectParams controls the contour detection pipeline.
type DetectParams struct {
	// BlurKernel is the Gaussian blur kernel size. Blurring before
	// thresholding suppresses sensor noise and paper texture.
	BlurKernel int

	// CloseKernel is the morphological closing kernel size. Closing
	// merges an island's ring stroke with the digit inside it so the
	// pair surfaces as one contour.
	CloseKernel int
}

// DefaultDetectParams returns detection parameters tuned for phone
// photographs of printed puzzles.
func DefaultDetectParams() DetectParams {
	return DetectParams{
		BlurKernel:  5,
		CloseKernel: 5,
	}
}

// Detector finds regions that may contain islands. It reports every
// contour's bounding box; callers decide which boxes are worth keeping.
type Detector struct {
	params DetectParams
}

// NewDetector creates a detector with the given parameters.
func NewDetector(params DetectParams) *Detector {
	if params.BlurKernel <= 0 {
		params.BlurKernel = DefaultDetectParams().BlurKernel
	}
	if params.CloseKernel <= 0 {
		params.CloseKernel = DefaultDetectParams().CloseKernel
	}
	return &Detector{params: params}
}

// DetectRegions returns the bounding boxes of all external contours of
// inked areas, in contour order.
func (d *Detector) DetectRegions(img image.Image) ([]geometry.RectInt, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("empty image")
	}

	mat, err := imageToMat(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	k := d.params.BlurKernel
	gocv.GaussianBlur(gray, &blurred, image.Point{k, k}, 0, 0, gocv.BorderDefault)

	// Puzzles are dark ink on light paper; inverted Otsu makes the ink
	// the foreground that FindContours traces.
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(blurred, &binary, 0, 255, gocv.ThresholdBinaryInv|gocv.ThresholdOtsu)

	kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Point{d.params.CloseKernel, d.params.CloseKernel})
	defer kernel.Close()
	gocv.MorphologyEx(binary, &binary, gocv.MorphClose, kernel)

	contours := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	rects := make([]geometry.RectInt, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		r := gocv.BoundingRect(contours.At(i))
		rects = append(rects, geometry.NewRectInt(r.Min.X, r.Min.Y, r.Dx(), r.Dy()))
	}
	return rects, nil
}

func imageToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return gocv.Mat{}, err
	}

	// OpenCV works in BGR order.
	bgr := gocv.NewMat()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)
	mat.Close()

	return bgr, nil
}
