// Package ocr recognizes island clue digits using Tesseract.
package ocr

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"hashi-capture/internal/imageio"
)

// ClueChars is the clue alphabet. Zero is excluded: no island carries a
// zero, and leaving it out stops Tesseract from reading an O-shaped
// blob as one.
const ClueChars = "123456789"

// State describes the engine lifecycle.
type State int

const (
	// StateUninitialized means the language models are still loading.
	StateUninitialized State = iota
	// StateReady means the engine accepts recognition calls.
	StateReady
	// StateFailed means initialization failed; AwaitReady returns the cause.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Params configures the Tesseract client.
type Params struct {
	Language       string // Tesseract language model, e.g. "eng"
	TessdataPrefix string // Override for the tessdata directory; empty uses the system default
	MinPatchSide   int    // Patches with a shorter side are upscaled before OCR
}

// DefaultParams returns default recognition parameters.
func DefaultParams() Params {
	return Params{
		Language:     "eng",
		MinPatchSide: 64,
	}
}

// Engine recognizes clue digits with a Tesseract client. Language
// models load in the background after NewEngine returns; recognition
// calls wait for initialization to settle, and AwaitReady exposes the
// same barrier to callers that want to fail fast.
type Engine struct {
	mu      sync.Mutex
	client  *gosseract.Client
	state   State
	initErr error
	ready   chan struct{}
	params  Params
}

// NewEngine starts engine initialization and returns immediately.
func NewEngine(params Params) *Engine {
	if params.Language == "" {
		params.Language = "eng"
	}
	if params.MinPatchSide <= 0 {
		params.MinPatchSide = DefaultParams().MinPatchSide
	}

	e := &Engine{
		params: params,
		ready:  make(chan struct{}),
	}
	go e.initialize()
	return e
}

func (e *Engine) initialize() {
	defer close(e.ready)

	client := gosseract.NewClient()

	if e.params.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(e.params.TessdataPrefix); err != nil {
			client.Close()
			e.fail(fmt.Errorf("failed to set tessdata prefix: %w", err))
			return
		}
	}
	if err := client.SetLanguage(e.params.Language); err != nil {
		client.Close()
		e.fail(fmt.Errorf("failed to set OCR language: %w", err))
		return
	}

	// Clue digits are not dictionary words; stop Tesseract from
	// "correcting" them into ones.
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")
	_ = client.SetVariable("classify_bln_numeric_mode", "1")

	e.mu.Lock()
	e.client = client
	e.state = StateReady
	e.mu.Unlock()
}

func (e *Engine) fail(err error) {
	e.mu.Lock()
	e.state = StateFailed
	e.initErr = err
	e.mu.Unlock()
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// AwaitReady blocks until initialization settles and returns its error,
// if any.
func (e *Engine) AwaitReady() error {
	<-e.ready
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initErr
}

// Close releases the Tesseract client. Safe to call whether or not
// initialization succeeded.
func (e *Engine) Close() error {
	<-e.ready
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	e.state = StateUninitialized
	return err
}

// RecognizeDigit recognizes the clue in a cropped island patch and
// returns the raw recognized text. Callers normalize it; the engine
// only guarantees the whitelist.
func (e *Engine) RecognizeDigit(patch image.Image) (string, error) {
	if err := e.AwaitReady(); err != nil {
		return "", err
	}

	scaled := imageio.Upscale(patch, e.params.MinPatchSide)
	encoded, err := imageio.EncodePNG(scaled)
	if err != nil {
		return "", err
	}

	prepared, err := prepareForOCR(encoded)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return "", fmt.Errorf("engine is closed")
	}

	// One digit per island; full page segmentation would hunt for
	// layout that is not there.
	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetWhitelist(ClueChars); err != nil {
		return "", fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := e.client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
