package cli

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
	"github.com/rcliao/uaforge/internal/model"
	"github.com/rcliao/uaforge/internal/randutil"
	"github.com/rcliao/uaforge/internal/score"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect [user agent]",
		Short: "Score and parse a user agent string",
		Args:  cobra.MinimumNArgs(1),
		Run:   runInspect,
	}

	RootCmd.AddCommand(cmd)
}

// Inspection is the inspect command's output.
type Inspection struct {
	UserAgent  string           `json:"user_agent"`
	DeviceType model.DeviceType `json:"device_type"`
	Score      float64          `json:"entropy_score"`
	Checks     []score.Check    `json:"checks"`
	Parsed     ParsedAgent      `json:"parsed"`
}

// ParsedAgent is an independent parser's view of the string.
type ParsedAgent struct {
	Platform       string `json:"platform"`
	OS             string `json:"os"`
	Model          string `json:"model"`
	Engine         string `json:"engine"`
	EngineVersion  string `json:"engine_version"`
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version"`
	Mobile         bool   `json:"mobile"`
	Bot            bool   `json:"bot"`
}

func inspect(text string, scorer *score.Scorer) Inspection {
	report := scorer.Evaluate(text)
	ua := useragent.New(text)
	engine, engineVersion := ua.Engine()
	browser, browserVersion := ua.Browser()

	return Inspection{
		UserAgent:  text,
		DeviceType: model.Classify(text),
		Score:      score.Round(report.Score),
		Checks:     report.Checks,
		Parsed: ParsedAgent{
			Platform:       ua.Platform(),
			OS:             ua.OS(),
			Model:          ua.Model(),
			Engine:         engine,
			EngineVersion:  engineVersion,
			Browser:        browser,
			BrowserVersion: browserVersion,
			Mobile:         ua.Mobile(),
			Bot:            ua.Bot(),
		},
	}
}

func runInspect(cmd *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	in := inspect(text, score.New(randutil.New()))

	if formatFlag == "text" {
		fmt.Printf("%s\n", in.UserAgent)
		fmt.Printf("device: %s  score: %.1f\n", in.DeviceType, in.Score)
		for _, c := range in.Checks {
			mark := "fail"
			if c.Passed {
				mark = "ok"
			}
			fmt.Printf("  %-18s %s\n", c.Name, mark)
		}
		fmt.Printf("parsed: %s / %s / %s %s\n", in.Parsed.Platform, in.Parsed.OS, in.Parsed.Browser, in.Parsed.BrowserVersion)
		return
	}
	printJSON(in)
}
