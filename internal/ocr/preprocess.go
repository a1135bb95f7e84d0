package ocr

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// prepareForOCR binarizes an encoded island patch so the digit stands
// dark on a light background, which is what Tesseract expects. The
// input and output are PNG-encoded.
func prepareForOCR(encoded []byte) ([]byte, error) {
	src, err := gocv.IMDecode(encoded, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("decoded patch is empty")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	// Local contrast equalization helps with uneven phone-camera
	// lighting across the board.
	enhanced := gocv.NewMat()
	defer enhanced.Close()
	clahe := gocv.NewCLAHEWithParams(2.0, image.Pt(8, 8))
	defer clahe.Close()
	clahe.Apply(gray, &enhanced)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(enhanced, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)

	// Islands are light discs with a dark digit. If the patch came out
	// mostly dark the polarity is flipped, so restore it.
	whiteRatio := float64(gocv.CountNonZero(binary)) / float64(binary.Rows()*binary.Cols())
	if whiteRatio < 0.5 {
		inverted := gocv.NewMat()
		defer inverted.Close()
		gocv.BitwiseNot(binary, &inverted)
		inverted.CopyTo(&binary)
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, binary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	defer buf.Close()

	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}
