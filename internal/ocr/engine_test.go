package ocr

import "testing"

func TestStateString(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "uninitialized"},
		{StateReady, "ready"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Language != "eng" {
		t.Errorf("Language = %q, want eng", p.Language)
	}
	if p.MinPatchSide <= 0 {
		t.Errorf("MinPatchSide = %d, want positive", p.MinPatchSide)
	}
}
