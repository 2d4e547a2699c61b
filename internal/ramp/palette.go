package ramp

import (
	"math"
	"sort"

	"github.com/ramptone/ramptone/internal/colour"
)

// Uniqueness-pass tuning. The metric is DeltaE in OKLab (scaled by 100);
// anything under the threshold is treated as visually indistinguishable.
const (
	similarityThreshold = 2.0
	maxNudgeAttempts    = 10

	// Attempts 1..6 displace lightness only; 7..10 add chroma and hue on
	// top of the full lightness displacement.
	lightnessOnlyAttempts = 6
	nudgeLightnessStep    = 0.01
	nudgeChromaStep       = 0.005
	nudgeHueStep          = 1.0
)

// Nudge records how far the uniqueness pass displaced a stop.
type Nudge struct {
	Lightness float64 `json:"lightness"`
	Chroma    float64 `json:"chroma"`
	Hue       float64 `json:"hue"`
}

// GeneratedStop is the output record for one stop. It is recomputed on
// every call and never mutated in place.
type GeneratedStop struct {
	StopNumber  int     `json:"stopNumber"`
	Hex         string  `json:"hex"`
	OriginalL   float64 `json:"originalL"`
	ExpandedL   float64 `json:"expandedL"`
	WasNudged   bool    `json:"wasNudged"`
	NudgeAmount *Nudge  `json:"nudgeAmount,omitempty"`
	TooSimilar  bool    `json:"tooSimilar"`
	DeltaE      float64 `json:"deltaE,omitempty"`
}

// Result is a full generated ramp in stop-number order.
type Result struct {
	ColorID       string          `json:"colorId"`
	Stops         []GeneratedStop `json:"stops"`
	HadDuplicates bool            `json:"hadDuplicates"`
}

// Generate runs the single-stop pipeline for every stop in ascending
// stop-number order, then walks the sequence pairwise detecting and
// repairing perceptually-too-similar neighbours. It is a pure function:
// identical inputs always produce an identical Result.
func Generate(colorID string, cfg Config, stops []Stop) Result {
	base := colour.ParseHex(cfg.BaseColor)
	bg := cfg.background()

	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	gen := make([]generated, len(sorted))
	for i, stop := range sorted {
		gen[i] = cfg.generateOne(stop, base, bg)
	}

	if cfg.PreserveIdentity {
		pinIdentity(gen, base)
	}

	out := make([]GeneratedStop, len(gen))
	hadDuplicates := false

	for i, g := range gen {
		rec := GeneratedStop{
			StopNumber: g.number,
			OriginalL:  g.originalL,
			ExpandedL:  g.expandedL,
		}

		if i > 0 {
			nudged, nudge, tooSimilar := separate(g.col, gen[i-1].col)
			if nudge != nil {
				gen[i].col = nudged
				rec.WasNudged = true
				rec.NudgeAmount = nudge
				rec.ExpandedL = nudged.L
				hadDuplicates = true
			}
			rec.TooSimilar = tooSimilar
			rec.DeltaE = colour.DeltaE(gen[i].col, gen[i-1].col)
		}

		rec.Hex = gen[i].col.Hex()
		out[i] = rec
	}

	return Result{
		ColorID:       colorID,
		Stops:         out,
		HadDuplicates: hadDuplicates,
	}
}

// pinIdentity replaces the generated stop whose target lightness sits
// closest to the base colour's own lightness with the exact base colour.
// Manual overrides are left alone.
func pinIdentity(gen []generated, base colour.LCH) {
	bestIdx := -1
	bestDist := math.Inf(1)
	for i, g := range gen {
		if g.manual {
			continue
		}
		if d := math.Abs(g.originalL - base.L); d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		gen[bestIdx].col = base
		gen[bestIdx].expandedL = base.L
	}
}

// separate nudges a colour away from its predecessor until their DeltaE
// clears the similarity threshold. Displacements are tried smallest first,
// lightness before chroma and hue, so the applied nudge is the minimal
// tested one that suffices. When the attempt budget runs out the colour is
// returned unchanged and flagged too-similar instead of being pushed far
// from its requested target.
func separate(c, prev colour.LCH) (colour.LCH, *Nudge, bool) {
	if colour.DeltaE(c, prev) >= similarityThreshold {
		return c, nil, false
	}

	// Push away from the predecessor along each axis.
	ldir := -1.0
	if c.L >= prev.L {
		ldir = 1
	}
	cdir := -1.0
	if c.C >= prev.C {
		cdir = 1
	}
	hdir := 1.0
	if colour.SignedHueDelta(c.H, prev.H) < 0 {
		hdir = -1
	}

	for attempt := 1; attempt <= maxNudgeAttempts; attempt++ {
		lSteps := attempt
		extra := 0
		if attempt > lightnessOnlyAttempts {
			lSteps = lightnessOnlyAttempts
			extra = attempt - lightnessOnlyAttempts
		}

		candidate := c
		candidate.L = clamp01(c.L + ldir*float64(lSteps)*nudgeLightnessStep)
		if extra > 0 {
			candidate.H = colour.NormalizeHue(c.H + hdir*float64(extra)*nudgeHueStep)
			candidate.C = c.C + cdir*float64(extra)*nudgeChromaStep
		}
		candidate.C = colour.ClampChroma(candidate.C, candidate.L, candidate.H)

		if colour.DeltaE(candidate, prev) >= similarityThreshold {
			nudge := &Nudge{
				Lightness: candidate.L - c.L,
				Chroma:    candidate.C - c.C,
				Hue:       colour.SignedHueDelta(candidate.H, c.H),
			}
			return candidate, nudge, false
		}
	}

	return c, nil, true
}
