package export

import (
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/storage"
)

func recordedTrack(t *testing.T, frames int) *storage.Track {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	stepper := orbit.NewStepper(1.0)

	track := storage.NewTrack(reg.Names())
	for i := 0; i < frames; i++ {
		stepper.Advance(reg)
		track.Append(stepper.Frames(), orbit.States(reg))
	}
	return track
}

func TestOrbitsToSVG(t *testing.T) {
	svg := OrbitsToSVG(recordedTrack(t, 10), 800, 800)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	if got := strings.Count(svg, "<path"); got != 9 {
		t.Errorf("expected 9 paths (one per body), got %d", got)
	}
}

func TestOrbitsToSVGEmpty(t *testing.T) {
	if svg := OrbitsToSVG(nil, 800, 800); svg != "" {
		t.Error("nil track should yield empty output")
	}
	if svg := OrbitsToSVG(&storage.Track{}, 800, 800); svg != "" {
		t.Error("empty track should yield empty output")
	}
	if svg := OrbitsToSVG(recordedTrack(t, 1), 800, 800); svg != "" {
		t.Error("single-frame track should yield empty output")
	}
}
