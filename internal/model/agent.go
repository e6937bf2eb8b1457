// Package model defines the reference corpus and generated agent types.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DeviceType classifies a generated user agent.
type DeviceType string

const (
	Android DeviceType = "android"
	IOS     DeviceType = "ios"
)

// Classify labels a user agent android if it carries the Android token,
// ios otherwise.
func Classify(text string) DeviceType {
	if strings.Contains(text, "Android") {
		return Android
	}
	return IOS
}

// Preference is the caller's requested platform for generation.
type Preference string

const (
	PreferAndroid Preference = "android"
	PreferIOS     Preference = "ios"
	PreferBoth    Preference = "both"
)

// ParsePreference validates a device preference. Empty means both.
func ParsePreference(s string) (Preference, error) {
	switch Preference(s) {
	case "":
		return PreferBoth, nil
	case PreferAndroid, PreferIOS, PreferBoth:
		return Preference(s), nil
	}
	return "", fmt.Errorf("invalid device type %q (use android, ios or both)", s)
}

// AndroidDevice is a reference Android handset or tablet.
type AndroidDevice struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	OSVersion    string `json:"os_version"`
}

// IOSDevice is a reference iPhone or iPad.
type IOSDevice struct {
	Model     string `json:"model"`
	OSVersion string `json:"os_version"`
}

// BrowserVersion is a Chrome or Safari release.
type BrowserVersion struct {
	Version string `json:"version"`
	Build   string `json:"build"`
}

// GeneratedAgent is a ledger row.
type GeneratedAgent struct {
	ID         string     `json:"id"`
	Text       string     `json:"user_agent"`
	DeviceType DeviceType `json:"device_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Result is what a generation request hands back to its caller.
type Result struct {
	Text       string     `json:"user_agent"`
	Score      float64    `json:"entropy_score"`
	DeviceType DeviceType `json:"device_type"`
	Attempts   int        `json:"attempts"`
	Accepted   bool       `json:"accepted"`
}
