package assemble

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/mssola/useragent"

	"github.com/rcliao/uaforge/internal/corpus"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
)

var (
	androidGrammar = regexp.MustCompile(`^Mozilla/5\.0 \(Linux; Android (\d+\.\d+); (.+?)(; (wv|Build/[A-Z]{2}[A-Z]\d{6}|[A-Z]{2}[A-Z]\d{6}))?\) ` +
		`AppleWebKit/(537\.3[456]) \(KHTML, like Gecko\) Chrome/(\d+\.\d+\.\d+\.\d+) Mobile Safari/(537\.3[456])` +
		`( (EdgA/1\.0|GoogleApp/13\.47\.8\.23|Chrome/96\.0\.4664\.104 Mobile Safari/537\.36|Mobile))?$`)

	iosGrammar = regexp.MustCompile(`^Mozilla/5\.0 \((iPhone|iPad); CPU (iPhone|iPad) OS (\d+(?:_\d+)*) like Mac OS X\) ` +
		`AppleWebKit/(605\.\d+\.\d+) \(KHTML, like Gecko\) (.+)$`)

	iosTails = map[Variant]*regexp.Regexp{
		VariantSafari:       regexp.MustCompile(`^Version/\d+(?:\.\d+)* Mobile/[0-9A-Za-z]+ Safari/\d+(?:\.\d+)*$`),
		VariantSafariDevice: regexp.MustCompile(`^Version/\d+(?:\.\d+)* Mobile/[0-9A-Za-z]+ Safari/\d+(?:\.\d+)* (iPhone|iPad)/20C65$`),
		VariantApp:          regexp.MustCompile(`^(GSA|FxiOS|EdgiOS)/(\d+)\.0\.(\d+) Mobile/[0-9A-Za-z]+ Safari/\d+(?:\.\d+)*$`),
		VariantCriOS:        regexp.MustCompile(`^CriOS/(\d+)\.0\.(\d+)\.(\d+) Mobile/[0-9A-Za-z]+ Safari/\d+(?:\.\d+)*$`),
	}

	buildIDPattern = regexp.MustCompile(`^(QP|RP|SP|TP)[A-Z]\d{6}$`)
)

func TestBuildID(t *testing.T) {
	a := New(randutil.NewSeeded(3))
	for i := 0; i < 500; i++ {
		id := a.BuildID()
		if !buildIDPattern.MatchString(id) {
			t.Fatalf("build id %q does not match %s", id, buildIDPattern)
		}
	}
}

func TestAndroidGrammar(t *testing.T) {
	a := New(randutil.NewSeeded(11))
	c := corpus.Builtin()

	tags := map[string]int{}
	extras := 0
	const n = 4000
	for i := 0; i < n; i++ {
		ua, err := a.Draft(c, model.Android)
		if err != nil {
			t.Fatalf("draft: %v", err)
		}
		m := androidGrammar.FindStringSubmatch(ua)
		if m == nil {
			t.Fatalf("android UA does not match grammar: %q", ua)
		}
		if m[5] != m[7] {
			t.Fatalf("webkit versions differ in %q", ua)
		}
		if strings.Contains(ua, "Android Android") || strings.Contains(ua, ";;") {
			t.Fatalf("malformed UA %q", ua)
		}
		switch {
		case m[4] == "":
			tags["none"]++
		case m[4] == "wv":
			tags["wv"]++
		case strings.HasPrefix(m[4], "Build/"):
			tags["build"]++
		default:
			tags["bare"]++
		}
		if m[9] != "" {
			extras++
		}
	}

	for _, k := range []string{"none", "wv", "build", "bare"} {
		if tags[k] < n/4-n/10 || tags[k] > n/4+n/10 {
			t.Errorf("build tag %q drawn %d times out of %d", k, tags[k], n)
		}
	}
	if extras < n/20 || extras > n/5 {
		t.Errorf("extra tag appended %d times out of %d, want about 10%%", extras, n)
	}
}

func TestAndroidNoBuildTagOmitsSeparator(t *testing.T) {
	a := New(randutil.NewSeeded(5))
	d := model.AndroidDevice{Manufacturer: "Google", Model: "Pixel 8", OSVersion: "14.0"}
	v := model.BrowserVersion{Version: "121.0.6167.85", Build: "6167.85"}
	for i := 0; i < 200; i++ {
		ua := a.Android(d, v)
		if strings.Contains(ua, "Pixel 8) ") {
			if strings.Contains(ua, "Pixel 8;") {
				t.Fatalf("stray separator in %q", ua)
			}
			return
		}
	}
	t.Fatal("no untagged UA produced in 200 draws")
}

func TestIOSGrammar(t *testing.T) {
	a := New(randutil.NewSeeded(17))
	c := corpus.Builtin()

	variants := map[Variant]int{}
	const n = 5000
	for i := 0; i < n; i++ {
		ua, err := a.Draft(c, model.IOS)
		if err != nil {
			t.Fatalf("draft: %v", err)
		}
		m := iosGrammar.FindStringSubmatch(ua)
		if m == nil {
			t.Fatalf("iOS UA does not match grammar: %q", ua)
		}
		if m[1] != m[2] {
			t.Fatalf("device tokens differ in %q", ua)
		}
		matched := false
		for v, re := range iosTails {
			if sm := re.FindStringSubmatch(m[5]); sm != nil {
				if v == VariantSafariDevice && sm[1] != m[1] {
					t.Fatalf("device suffix %q does not match device %q in %q", sm[1], m[1], ua)
				}
				checkRanges(t, v, sm, ua)
				variants[v]++
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("iOS tail matches no template: %q", ua)
		}
	}

	// Tail grammars are anchored and mutually exclusive.
	share := func(v Variant) float64 { return float64(variants[v]) / n }
	if s := share(VariantSafari); s < 0.65 || s > 0.75 {
		t.Errorf("safari share %.3f, want ~0.70", s)
	}
	if s := share(VariantSafariDevice); s < 0.16 || s > 0.24 {
		t.Errorf("safari+device share %.3f, want ~0.20", s)
	}
	if s := share(VariantApp); s < 0.03 || s > 0.07 {
		t.Errorf("app share %.3f, want ~0.05", s)
	}
	if s := share(VariantCriOS); s < 0.03 || s > 0.07 {
		t.Errorf("crios share %.3f, want ~0.05", s)
	}
}

func checkRanges(t *testing.T, v Variant, sm []string, ua string) {
	t.Helper()
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	switch v {
	case VariantApp:
		if major := atoi(sm[2]); major < 100 || major > 371 {
			t.Fatalf("app major %d out of range in %q", major, ua)
		}
		if minor := atoi(sm[3]); minor < 1 || minor > 99 {
			t.Fatalf("app minor %d out of range in %q", minor, ua)
		}
	case VariantCriOS:
		if major := atoi(sm[1]); major < 90 || major > 120 {
			t.Fatalf("CriOS major %d out of range in %q", major, ua)
		}
		if build := atoi(sm[2]); build < 4000 || build > 6000 {
			t.Fatalf("CriOS build %d out of range in %q", build, ua)
		}
		if minor := atoi(sm[3]); minor < 80 || minor > 200 {
			t.Fatalf("CriOS minor %d out of range in %q", minor, ua)
		}
	}
}

func TestIOSDeviceToken(t *testing.T) {
	a := New(randutil.NewSeeded(9))
	v := model.BrowserVersion{Version: "17.3.1", Build: "17617.3.1.11.12"}

	phone := a.IOS(model.IOSDevice{Model: "iPhone 15 Pro", OSVersion: "17.3.1"}, v)
	if !strings.HasPrefix(phone, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_3_1 like Mac OS X)") {
		t.Errorf("unexpected iPhone UA %q", phone)
	}

	pad := a.IOS(model.IOSDevice{Model: "iPad Air (5th generation)", OSVersion: "17.2.1"}, v)
	if !strings.HasPrefix(pad, "Mozilla/5.0 (iPad; CPU iPad OS 17_2_1 like Mac OS X)") {
		t.Errorf("unexpected iPad UA %q", pad)
	}
}

func TestDraftEmptyCorpus(t *testing.T) {
	a := New(randutil.NewSeeded(1))
	c := corpus.New(nil, corpus.IOSDevices, corpus.ChromeVersions, corpus.SafariVersions)
	if _, err := a.Draft(c, model.Android); err == nil {
		t.Fatal("expected error drafting from empty android table")
	}
	if _, err := a.Draft(c, model.IOS); err != nil {
		t.Fatalf("ios draft: %v", err)
	}
}

func TestParsedByUserAgentLibrary(t *testing.T) {
	a := New(randutil.NewSeeded(23))
	c := corpus.Builtin()

	for i := 0; i < 100; i++ {
		s, _ := a.Draft(c, model.Android)
		ua := useragent.New(s)
		if !strings.HasPrefix(ua.OS(), "Android") {
			t.Fatalf("OS %q for %q", ua.OS(), s)
		}
		if engine, _ := ua.Engine(); engine != "AppleWebKit" {
			t.Fatalf("engine %q for %q", engine, s)
		}
	}

	for i := 0; i < 100; i++ {
		s, _ := a.Draft(c, model.IOS)
		ua := useragent.New(s)
		if p := ua.Platform(); p != "iPhone" && p != "iPad" {
			t.Fatalf("platform %q for %q", p, s)
		}
		if engine, _ := ua.Engine(); engine != "AppleWebKit" {
			t.Fatalf("engine %q for %q", engine, s)
		}
	}
}
