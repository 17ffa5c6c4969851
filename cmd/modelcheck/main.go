// modelcheck is a CLI for validating 3D scene descriptions: it runs the
// registered checks against a scene file and prints a report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/modelcheck/internal/config"
	"github.com/Faultbox/modelcheck/internal/logger"
	"github.com/Faultbox/modelcheck/pkg/checker"
	"github.com/Faultbox/modelcheck/pkg/checker/checks"
	"github.com/Faultbox/modelcheck/pkg/formats"
	"github.com/Faultbox/modelcheck/pkg/scene"
)

func main() {
	var (
		scenePath   = flag.String("scene", "", "scene description file (YAML)")
		configPath  = flag.String("config", "", "config file (default: standard locations)")
		checksFlag  = flag.String("checks", "", "comma-separated check IDs (default: all)")
		jsonOut     = flag.Bool("json", false, "print the report as JSON")
		listChecks  = flag.Bool("list", false, "list registered checks and exit")
		writeConfig = flag.String("write-config", "", "write the default config to the given path and exit")
	)
	flag.Parse()

	if *writeConfig != "" {
		if err := config.Save(config.Default(), *writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default config to %s\n", *writeConfig)
		return
	}

	reg := checker.NewRegistry()
	if err := checks.RegisterAll(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listChecks {
		printChecks(reg)
		return
	}

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: modelcheck -scene <scene.yaml> [-checks id,id] [-json]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	view, err := formats.LoadScene(*scenePath)
	if err != nil {
		log.Error("loading scene failed", zap.Error(err))
		os.Exit(1)
	}

	selection := cfg.Run.Selection
	if *checksFlag != "" {
		selection = splitIDs(*checksFlag)
	}
	if len(selection) == 0 {
		selection = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := checker.NewRunner(reg,
		checker.WithLogger(log),
		checker.WithWorkers(cfg.Run.Workers),
	)
	report := runner.Run(ctx, view, selection, cfg.Overrides())

	if *jsonOut {
		printJSON(report)
	} else {
		printReport(report)
	}

	if !report.Clean() {
		os.Exit(2)
	}
}

// splitIDs parses a comma-separated check ID list, ignoring empty entries.
func splitIDs(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func printChecks(reg *checker.Registry) {
	ids := reg.IDs()
	sort.Strings(ids)
	fmt.Println("Registered checks:")
	for _, id := range ids {
		c, _ := reg.Get(id)
		fmt.Printf("  %-22s %-10s reports %s\n", c.ID, c.Category, c.Shape)
	}
}

func printReport(report checker.Report) {
	summary := report.Summarize()

	for _, id := range report.Order {
		o := report.Outcomes[id]
		switch {
		case o.Err != nil:
			fmt.Printf("FAIL  %-22s %v\n", id, o.Err)
		case o.Result.Empty():
			fmt.Printf("ok    %-22s\n", id)
		default:
			fmt.Printf("FLAG  %-22s %d %s\n", id, o.Result.Count(), o.Result.Shape)
			for _, node := range o.Result.Nodes {
				fmt.Printf("        %s\n", node)
			}
			for node, idxs := range o.Result.Components {
				fmt.Printf("        %s: %v\n", node, idxs)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Flagged entities: %d across %d checks (%d checks failed)\n",
		summary.Flagged, len(report.Order), summary.Failures)
}

// jsonOutcome is the serialized per-check report entry.
type jsonOutcome struct {
	Check      string                 `json:"check"`
	Category   string                 `json:"category"`
	Error      string                 `json:"error,omitempty"`
	Shape      string                 `json:"shape,omitempty"`
	Nodes      []scene.NodeID         `json:"nodes,omitempty"`
	Components map[scene.NodeID][]int `json:"components,omitempty"`
}

func printJSON(report checker.Report) {
	out := make([]jsonOutcome, 0, len(report.Order))
	for _, id := range report.Order {
		o := report.Outcomes[id]
		entry := jsonOutcome{Check: id, Category: o.Category}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		} else {
			entry.Shape = o.Result.Shape.String()
			entry.Nodes = o.Result.Nodes
			entry.Components = o.Result.Components
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
