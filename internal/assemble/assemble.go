// Package assemble builds Android and iOS user agent strings from corpus
// samples plus randomized auxiliary tokens.
package assemble

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rcliao/uaforge/internal/corpus"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
)

var (
	buildPrefixes = []string{"QP", "RP", "SP", "TP"}

	// Appended with probability extraTagChance.
	androidExtraTags = []string{
		"EdgA/1.0",
		"GoogleApp/13.47.8.23",
		"Chrome/96.0.4664.104 Mobile Safari/537.36",
		"Mobile",
	}

	iosWebKitVersions = []string{"605.1.15", "605.2.15", "605.3.8", "605.4.6", "605.5.4"}
	iosMobileBuilds   = []string{"15E148", "15E148a", "15F79", "15G77", "17A844", "17B111", "17C54", "17D50"}
	iosAppTags        = []string{"GSA", "FxiOS", "EdgiOS"}
)

const extraTagChance = 0.10

// Variant identifies one of the iOS tail templates.
type Variant int

const (
	VariantSafari Variant = iota
	VariantSafariDevice
	VariantApp
	VariantCriOS
)

// variantWeights are cumulative-selection weights, indexed by Variant.
var variantWeights = []float64{0.70, 0.20, 0.05, 0.05}

// Assembler builds user agent strings. It is safe for concurrent use when
// its *rand.Rand is (see randutil.New).
type Assembler struct {
	rng *rand.Rand
}

// New returns an Assembler drawing from rng.
func New(rng *rand.Rand) *Assembler {
	return &Assembler{rng: rng}
}

// Draft samples a device and browser for dt and assembles one candidate.
func (a *Assembler) Draft(c *corpus.Corpus, dt model.DeviceType) (string, error) {
	switch dt {
	case model.Android:
		d, err := c.Android.Sample(a.rng)
		if err != nil {
			return "", err
		}
		v, err := c.Chrome.Sample(a.rng)
		if err != nil {
			return "", err
		}
		return a.Android(d, v), nil
	case model.IOS:
		d, err := c.IOS.Sample(a.rng)
		if err != nil {
			return "", err
		}
		v, err := c.Safari.Sample(a.rng)
		if err != nil {
			return "", err
		}
		return a.IOS(d, v), nil
	}
	return "", fmt.Errorf("unknown device type %q", dt)
}

// BuildID returns a two-letter prefix, an uppercase letter and six digits.
func (a *Assembler) BuildID() string {
	letter := 'A' + rune(a.rng.Intn(26))
	return fmt.Sprintf("%s%c%06d", randutil.Pick(a.rng, buildPrefixes), letter, a.rng.Intn(1000000))
}

// Android assembles:
//
//	Mozilla/5.0 (Linux; Android <os>; <mfr> <model>[; <tag>]) AppleWebKit/<wk> (KHTML, like Gecko) Chrome/<ver> Mobile Safari/<wk>[ <extra>]
func (a *Assembler) Android(d model.AndroidDevice, chrome model.BrowserVersion) string {
	webkit := fmt.Sprintf("537.%d", randutil.Between(a.rng, 34, 36))

	var buildTag string
	switch a.rng.Intn(4) {
	case 0:
		// no tag
	case 1:
		buildTag = "wv"
	case 2:
		buildTag = "Build/" + a.BuildID()
	case 3:
		buildTag = a.BuildID()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mozilla/5.0 (Linux; Android %s; %s %s", d.OSVersion, d.Manufacturer, d.Model)
	if buildTag != "" {
		b.WriteString("; ")
		b.WriteString(buildTag)
	}
	fmt.Fprintf(&b, ") AppleWebKit/%s (KHTML, like Gecko) Chrome/%s Mobile Safari/%s", webkit, chrome.Version, webkit)

	if a.rng.Float64() < extraTagChance {
		b.WriteString(" ")
		b.WriteString(randutil.Pick(a.rng, androidExtraTags))
	}
	return b.String()
}

// IOS assembles:
//
//	Mozilla/5.0 (<dev>; CPU <dev> OS <os_with_underscores> like Mac OS X) AppleWebKit/<wk> (KHTML, like Gecko) <variant>
func (a *Assembler) IOS(d model.IOSDevice, safari model.BrowserVersion) string {
	device := "iPad"
	if strings.Contains(d.Model, "iPhone") {
		device = "iPhone"
	}
	osVersion := strings.ReplaceAll(d.OSVersion, ".", "_")
	webkit := randutil.Pick(a.rng, iosWebKitVersions)
	mobile := randutil.Pick(a.rng, iosMobileBuilds)

	head := fmt.Sprintf("Mozilla/5.0 (%s; CPU %s OS %s like Mac OS X) AppleWebKit/%s (KHTML, like Gecko)", device, device, osVersion, webkit)

	var tail string
	switch a.pickVariant() {
	case VariantSafari:
		tail = fmt.Sprintf("Version/%s Mobile/%s Safari/%s", safari.Version, mobile, safari.Version)
	case VariantSafariDevice:
		tail = fmt.Sprintf("Version/%s Mobile/%s Safari/%s %s/20C65", safari.Version, mobile, safari.Version, device)
	case VariantApp:
		tail = fmt.Sprintf("%s/%d.0.%d Mobile/%s Safari/%s",
			randutil.Pick(a.rng, iosAppTags),
			randutil.Between(a.rng, 100, 371), randutil.Between(a.rng, 1, 99),
			mobile, safari.Version)
	case VariantCriOS:
		tail = fmt.Sprintf("CriOS/%d.0.%d.%d Mobile/%s Safari/%s",
			randutil.Between(a.rng, 90, 120), randutil.Between(a.rng, 4000, 6000), randutil.Between(a.rng, 80, 200),
			mobile, safari.Version)
	}
	return head + " " + tail
}

func (a *Assembler) pickVariant() Variant {
	r := a.rng.Float64()
	var cum float64
	for i, w := range variantWeights {
		cum += w
		if r < cum {
			return Variant(i)
		}
	}
	return Variant(len(variantWeights) - 1)
}
