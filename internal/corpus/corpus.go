// Package corpus holds the device and browser reference tables and draws
// records from them with a recency bias.
package corpus

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
)

// ErrEmptyCorpus is returned when a table has no rows at sampling time.
var ErrEmptyCorpus = errors.New("empty corpus")

// Tier is the recency class of a record.
type Tier int

const (
	Baseline Tier = iota
	Middle
	Top
)

func (t Tier) String() string {
	switch t {
	case Top:
		return "top"
	case Middle:
		return "middle"
	}
	return "baseline"
}

// weightRange returns the inclusive integer range a tier's weight is drawn from.
func weightRange(t Tier) (lo, hi int) {
	switch t {
	case Top:
		return 3, 6
	case Middle:
		return 1, 3
	}
	return 1, 1
}

// Table is a read-only reference table. Tiers are derived once from the
// table contents: the newest distinct tier key is Top, the second newest is
// Middle, everything else is Baseline.
type Table[T any] struct {
	name  string
	rows  []T
	tiers []Tier
}

// NewTable builds a table whose tier is decided by key(row).
func NewTable[T any](name string, rows []T, key func(T) string) *Table[T] {
	keys := make([]string, len(rows))
	distinct := map[string]bool{}
	for i, r := range rows {
		keys[i] = key(r)
		distinct[keys[i]] = true
	}

	ordered := make([]string, 0, len(distinct))
	for k := range distinct {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return CompareVersions(ordered[i], ordered[j]) > 0
	})

	tiers := make([]Tier, len(rows))
	for i, k := range keys {
		switch {
		case len(ordered) > 0 && k == ordered[0]:
			tiers[i] = Top
		case len(ordered) > 1 && k == ordered[1]:
			tiers[i] = Middle
		default:
			tiers[i] = Baseline
		}
	}

	return &Table[T]{name: name, rows: rows, tiers: tiers}
}

// Name returns the table name.
func (t *Table[T]) Name() string { return t.name }

// Len returns the number of rows.
func (t *Table[T]) Len() int { return len(t.rows) }

// Rows returns the table rows. Callers must not modify them.
func (t *Table[T]) Rows() []T { return t.rows }

// TierOf returns the tier of row i.
func (t *Table[T]) TierOf(i int) Tier { return t.tiers[i] }

// Sample draws one row by cumulative-weight roulette. Weights are redrawn
// from each row's tier range on every call.
func (t *Table[T]) Sample(rng *rand.Rand) (T, error) {
	var zero T
	if len(t.rows) == 0 {
		return zero, fmt.Errorf("%w: %s", ErrEmptyCorpus, t.name)
	}

	weights := make([]int, len(t.rows))
	total := 0
	for i, tier := range t.tiers {
		lo, hi := weightRange(tier)
		weights[i] = randutil.Between(rng, lo, hi)
		total += weights[i]
	}

	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return t.rows[i], nil
		}
		r -= w
	}
	return t.rows[len(t.rows)-1], nil
}

// Corpus groups the four reference tables.
type Corpus struct {
	Android *Table[model.AndroidDevice]
	IOS     *Table[model.IOSDevice]
	Chrome  *Table[model.BrowserVersion]
	Safari  *Table[model.BrowserVersion]
}

// New builds a corpus with the standard tier keys for each table.
func New(android []model.AndroidDevice, ios []model.IOSDevice, chrome, safari []model.BrowserVersion) *Corpus {
	return &Corpus{
		Android: NewTable("android_devices", android, AndroidTierKey),
		IOS:     NewTable("ios_devices", ios, IOSTierKey),
		Chrome:  NewTable("chrome_versions", chrome, BrowserTierKey),
		Safari:  NewTable("safari_versions", safari, BrowserTierKey),
	}
}

// AndroidTierKey tiers Android devices by their full OS version.
func AndroidTierKey(d model.AndroidDevice) string { return d.OSVersion }

// IOSTierKey tiers iOS devices by major.minor, so 17.3 and 17.3.1 share a tier.
func IOSTierKey(d model.IOSDevice) string {
	parts := strings.SplitN(d.OSVersion, ".", 3)
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return d.OSVersion
}

// BrowserTierKey tiers browsers by their leading version number.
func BrowserTierKey(v model.BrowserVersion) string {
	major, _, _ := strings.Cut(v.Version, ".")
	return major
}

// CompareVersions compares dotted version strings numerically, component by
// component. Missing components count as zero; non-numeric components fall
// back to string comparison.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if c := compareComponent(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func compareComponent(x, y string) int {
	if x == "" {
		x = "0"
	}
	if y == "" {
		y = "0"
	}
	xn, xerr := strconv.Atoi(x)
	yn, yerr := strconv.Atoi(y)
	if xerr == nil && yerr == nil {
		switch {
		case xn < yn:
			return -1
		case xn > yn:
			return 1
		}
		return 0
	}
	return strings.Compare(x, y)
}
