package palette

import (
	"math/rand"
	"testing"
)

func TestForStyleKnownStyles(t *testing.T) {
	for _, style := range StyleNames() {
		p := ForStyle(style)
		if len(p) == 0 {
			t.Errorf("ForStyle(%q) returned empty palette", style)
		}
	}
}

func TestForStyleFallback(t *testing.T) {
	got := ForStyle("not_a_style")
	realism := stylePalettes["realism"]

	if len(got) != len(realism) {
		t.Fatalf("fallback palette has %d colors, want %d", len(got), len(realism))
	}
	for i := range got {
		if got[i] != realism[i] {
			t.Errorf("fallback[%d] = %v, want realism %v", i, got[i], realism[i])
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"pop_art", true},
		{"suprematist", true},
		{"jewel_tones", true},
		{"moody_dark", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ByName(tt.name)
			if ok != tt.found {
				t.Fatalf("ByName(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && len(p) == 0 {
				t.Errorf("ByName(%q) returned empty palette", tt.name)
			}
		})
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != len(stylePalettes)+len(sophisticatedPalettes) {
		t.Fatalf("Names() has %d entries, want %d",
			len(names), len(stylePalettes)+len(sophisticatedPalettes))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestBackgroundReturnsMember(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := ForStyle("baroque")

	for i := 0; i < 50; i++ {
		bg := p.Background(rng)
		found := false
		for _, c := range p {
			if c == bg {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Background returned %v, not a palette member", bg)
		}
	}
}

func TestBackgroundPrefersExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := Palette{
		{0, 0, 0},       // dark, weight 3
		{128, 128, 128}, // midtone, weight 1
	}

	dark := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if p.Background(rng) == (Color{0, 0, 0}) {
			dark++
		}
	}

	// Expected ratio 3:1; accept anything clearly above 1:1.
	if dark < trials*6/10 {
		t.Errorf("dark background picked %d/%d times, want heavy bias", dark, trials)
	}
}
