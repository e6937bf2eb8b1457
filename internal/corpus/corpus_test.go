package corpus

import (
	"errors"
	"testing"

	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"14.0", "13.0", 1},
		{"13.0", "14.0", -1},
		{"17.3", "17.3.0", 0},
		{"17.10", "17.9", 1},
		{"121", "120", 1},
		{"16.7.2", "17.2.1", -1},
		{"", "0", 0},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTierKeys(t *testing.T) {
	if got := IOSTierKey(model.IOSDevice{OSVersion: "17.3.1"}); got != "17.3" {
		t.Errorf("IOSTierKey(17.3.1) = %q", got)
	}
	if got := IOSTierKey(model.IOSDevice{OSVersion: "17"}); got != "17" {
		t.Errorf("IOSTierKey(17) = %q", got)
	}
	if got := BrowserTierKey(model.BrowserVersion{Version: "121.0.6167.85"}); got != "121" {
		t.Errorf("BrowserTierKey = %q", got)
	}
	if got := AndroidTierKey(model.AndroidDevice{OSVersion: "14.0"}); got != "14.0" {
		t.Errorf("AndroidTierKey = %q", got)
	}
}

func TestBuiltinTiers(t *testing.T) {
	c := Builtin()

	for i, v := range c.Chrome.Rows() {
		want := Baseline
		switch BrowserTierKey(v) {
		case "121":
			want = Top
		case "120":
			want = Middle
		}
		if got := c.Chrome.TierOf(i); got != want {
			t.Errorf("chrome %s: tier %s, want %s", v.Version, got, want)
		}
	}

	for i, d := range c.Android.Rows() {
		want := Middle
		if d.OSVersion == "14.0" {
			want = Top
		}
		if got := c.Android.TierOf(i); got != want {
			t.Errorf("android %s %s: tier %s, want %s", d.Manufacturer, d.Model, got, want)
		}
	}

	for i, d := range c.IOS.Rows() {
		var want Tier
		switch IOSTierKey(d) {
		case "17.3":
			want = Top
		case "17.2":
			want = Middle
		default:
			want = Baseline
		}
		if got := c.IOS.TierOf(i); got != want {
			t.Errorf("ios %s %s: tier %s, want %s", d.Model, d.OSVersion, got, want)
		}
	}
}

func TestSampleEmpty(t *testing.T) {
	table := NewTable("chrome_versions", nil, BrowserTierKey)
	_, err := table.Sample(randutil.NewSeeded(1))
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestSampleSingleRow(t *testing.T) {
	rows := []model.BrowserVersion{{Version: "121.0.1.2", Build: "1.2"}}
	table := NewTable("chrome_versions", rows, BrowserTierKey)
	rng := randutil.NewSeeded(1)
	for i := 0; i < 50; i++ {
		v, err := table.Sample(rng)
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		if v != rows[0] {
			t.Fatalf("unexpected row %+v", v)
		}
	}
}

func TestSampleRecencyBias(t *testing.T) {
	rows := []model.AndroidDevice{
		{Manufacturer: "Google", Model: "Pixel 8", OSVersion: "14.0"},
		{Manufacturer: "Google", Model: "Pixel 8 Pro", OSVersion: "14.0"},
		{Manufacturer: "Samsung", Model: "Galaxy A53 5G", OSVersion: "13.0"},
		{Manufacturer: "Sony", Model: "Xperia 1 IV", OSVersion: "12.0"},
		{Manufacturer: "Sony", Model: "Xperia 5 IV", OSVersion: "12.0"},
		{Manufacturer: "Motorola", Model: "Edge 30", OSVersion: "12.0"},
		{Manufacturer: "Motorola", Model: "Edge 20", OSVersion: "11.0"},
		{Manufacturer: "Nokia", Model: "G50", OSVersion: "11.0"},
	}
	table := NewTable("android_devices", rows, AndroidTierKey)
	rng := randutil.NewSeeded(2024)

	const draws = 10000
	counts := map[Tier]int{}
	rowsPerTier := map[Tier]int{}
	for i := range rows {
		rowsPerTier[table.TierOf(i)]++
	}
	for i := 0; i < draws; i++ {
		d, err := table.Sample(rng)
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		counts[tierOfRow(table, d)]++
	}

	topAvg := float64(counts[Top]) / float64(rowsPerTier[Top])
	baseAvg := float64(counts[Baseline]) / float64(rowsPerTier[Baseline])
	ratio := topAvg / baseAvg
	if ratio < 2 || ratio > 7 {
		t.Errorf("top/baseline frequency ratio %.2f outside [2, 7] (top=%d base=%d)", ratio, counts[Top], counts[Baseline])
	}
	if counts[Middle] == 0 {
		t.Error("middle tier never drawn")
	}
}

func tierOfRow(table *Table[model.AndroidDevice], d model.AndroidDevice) Tier {
	for i, r := range table.Rows() {
		if r == d {
			return table.TierOf(i)
		}
	}
	return Baseline
}

func TestManufacturers(t *testing.T) {
	got := Manufacturers(AndroidDevices)
	want := []string{"Samsung", "Google", "OnePlus", "Motorola", "Nothing", "ASUS", "Sony", "OPPO", "Xiaomi", "TCL"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manufacturer %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
