// Package score grades how plausible a user agent string looks.
package score

import (
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/rcliao/uaforge/internal/corpus"
)

// Jitter is the half-width of the uniform noise added to every score.
const Jitter = 2.0

var (
	androidOSPattern     = regexp.MustCompile(`Android \d+\.\d+`)
	chromeVersionPattern = regexp.MustCompile(`Chrome/\d+\.\d+\.\d+\.\d+`)
	buildTagPattern      = regexp.MustCompile(`Build/[A-Z]{2}[A-Z0-9]\d{6}`)
	androidWebKitPattern = regexp.MustCompile(`WebKit/537\.(34|35|36)`)

	iosOSPattern      = regexp.MustCompile(`OS \d+_\d+(_\d+)? like Mac OS X`)
	safariVersion     = regexp.MustCompile(`Version/\d+\.\d+(\.\d+)?`)
	mobileBuild       = regexp.MustCompile(`Mobile/[0-9A-Z]+`)
	iosWebKitPattern  = regexp.MustCompile(`WebKit/60[0-9]\.\d+\.\d+`)
	androidAuxTokens  = []string{"wv", "EdgA", "GoogleApp", "Mobile Safari"}
	iosDeviceTokens   = []string{"iPhone", "iPad"}
	iosAltBrowserTags = []string{"CriOS", "FxiOS", "EdgiOS", "GSA"}
)

// Check is one named pass/fail test in a battery.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Report is the full outcome of scoring a string.
type Report struct {
	Platform string  `json:"platform"`
	Checks   []Check `json:"checks"`
	Base     float64 `json:"base"`
	Score    float64 `json:"score"`
}

// Passed counts the passing checks.
func (r Report) Passed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// Scorer runs the plausibility battery. Safe for concurrent use when its
// *rand.Rand is.
type Scorer struct {
	rng           *rand.Rand
	manufacturers []string
}

// New returns a Scorer that recognises the built-in corpus manufacturers.
func New(rng *rand.Rand) *Scorer {
	return NewWithManufacturers(rng, corpus.Manufacturers(corpus.AndroidDevices))
}

// NewWithManufacturers returns a Scorer with an explicit manufacturer list.
func NewWithManufacturers(rng *rand.Rand, manufacturers []string) *Scorer {
	return &Scorer{rng: rng, manufacturers: manufacturers}
}

// Score returns the jittered score in [0, 100] at full precision.
func (s *Scorer) Score(ua string) float64 {
	return s.Evaluate(ua).Score
}

// Evaluate runs the battery for the platform ua claims and applies jitter.
func (s *Scorer) Evaluate(ua string) Report {
	var r Report
	if strings.Contains(ua, "Android") {
		r.Platform = "android"
		r.Checks = s.androidChecks(ua)
	} else {
		r.Platform = "ios"
		r.Checks = iosChecks(ua)
	}

	r.Base = float64(r.Passed()) / float64(len(r.Checks)) * 100
	r.Score = clamp(r.Base+(s.rng.Float64()*2-1)*Jitter, 0, 100)
	return r
}

func (s *Scorer) androidChecks(ua string) []Check {
	return []Check{
		{"os_version", androidOSPattern.MatchString(ua)},
		{"manufacturer", containsAny(ua, s.manufacturers)},
		{"chrome_version", chromeVersionPattern.MatchString(ua)},
		{"build_tag", buildTagPattern.MatchString(ua)},
		{"webkit_version", androidWebKitPattern.MatchString(ua)},
		{"aux_token", containsAny(ua, androidAuxTokens)},
	}
}

func iosChecks(ua string) []Check {
	hasVersion := safariVersion.MatchString(ua)
	alt := containsAny(ua, iosAltBrowserTags)
	return []Check{
		{"os_version", iosOSPattern.MatchString(ua)},
		{"device", containsAny(ua, iosDeviceTokens)},
		{"safari_version", hasVersion},
		{"mobile_build", mobileBuild.MatchString(ua)},
		// Either an alternate browser owns the tail or Safari does.
		{"browser_signature", alt || hasVersion},
		{"webkit_version", iosWebKitPattern.MatchString(ua)},
	}
}

// Round reports a score to one decimal place.
func Round(v float64) float64 {
	return math.Round(v*10) / 10
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
