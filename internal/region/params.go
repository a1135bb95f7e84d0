package region

// DefaultParams returns default island filtering parameters.
// These are tuned for screenshots and phone photographs of printed
// puzzle grids at typical resolutions.
func DefaultParams() FilterParams {
	return FilterParams{
		// Island markers render at 15-60px in common captures; anything
		// at 10px or under is noise from thresholding.
		MinWidth:  10,
		MinHeight: 10,
		MinArea:   100,

		// An island never covers a tenth of the photograph. Regions that
		// large are the board border or the page itself.
		MaxAreaDivisor: 10,
	}
}

// WithMinSize returns a copy of params with custom size floors.
func (p FilterParams) WithMinSize(width, height int) FilterParams {
	p.MinWidth = width
	p.MinHeight = height
	p.MinArea = width * height
	return p
}

// WithMaxAreaDivisor returns a copy of params with a custom large-region cutoff.
func (p FilterParams) WithMaxAreaDivisor(divisor int) FilterParams {
	p.MaxAreaDivisor = divisor
	return p
}
