package styles

import "testing"

func TestFitFontSize_Bounds(t *testing.T) {
	labels := []string{
		"a",
		"Hi",
		"a rather long single line label",
		"multi\nline",
		"one\ntwo\nthree\nfour\nfive\nsix",
	}
	boxes := [][2]float64{{100, 50}, {10, 10}, {400, 300}, {1, 1}}

	for _, label := range labels {
		for _, box := range boxes {
			got := FitFontSize(label, box[0], box[1], 16)
			if got <= 0 {
				t.Errorf("FitFontSize(%q, %v, %v) = %v, want > 0", label, box[0], box[1], got)
			}
			if got > 16 {
				t.Errorf("FitFontSize(%q, %v, %v) = %v, want <= base 16", label, box[0], box[1], got)
			}
		}
	}
}

func TestFitFontSize_Cap(t *testing.T) {
	// A huge box cannot push the size past the global cap.
	if got := FitFontSize("x", 10000, 10000, 64); got != 20 {
		t.Errorf("FitFontSize() = %v, want capped at 20", got)
	}
	// Nor past a smaller base.
	if got := FitFontSize("x", 10000, 10000, 12); got != 12 {
		t.Errorf("FitFontSize() = %v, want base 12", got)
	}
	// Zero base falls back to the default base.
	if got := FitFontSize("x", 10000, 10000, 0); got != 16 {
		t.Errorf("FitFontSize() with zero base = %v, want 16", got)
	}
}

func TestFitFontSize_WidthBound(t *testing.T) {
	// 10 chars at 0.55 advance in 85% of 110px: size = 93.5 / 5.5 = 17.
	got := FitFontSize("abcdefghij", 110, 1000, 64)
	if got < 16.9 || got > 17.1 {
		t.Errorf("FitFontSize() = %v, want ~17", got)
	}
}

func TestFitFontSize_HeightBound(t *testing.T) {
	// 4 lines at 1.3 spacing in 70% of 52px: size = 36.4 / 5.2 = 7.
	got := FitFontSize("a\nb\nc\nd", 1000, 52, 64)
	if got < 6.9 || got > 7.1 {
		t.Errorf("FitFontSize() = %v, want ~7", got)
	}
}

func TestFitFontSize_LongestLineWins(t *testing.T) {
	short := FitFontSize("aa\nbb", 100, 1000, 64)
	long := FitFontSize("aa\nbbbbbbbbbb", 100, 1000, 64)
	if long >= short {
		t.Errorf("longer line should shrink the fit: short=%v long=%v", short, long)
	}
}
