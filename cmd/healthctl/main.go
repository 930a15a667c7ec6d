// Command healthctl calls a running health tools server from the shell.
//
//	healthctl -server http://localhost:8011 tool calculate_bmi '{"weight":70,"height":175}'
//	healthctl recommend "كم جرعة البنادول"
//	healthctl usage
//	healthctl export '{"birthDate":"2024-01-15"}' schedule.xlsx
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"taafi-health-tools/internal/client"
)

var (
	serverURL = flag.String("server", envOr("HEALTH_TOOLS_URL", "http://localhost:8011"), "Health tools server URL")
	limit     = flag.Int("limit", 3, "Maximum tools returned by recommend")
	timeout   = flag.Duration("timeout", 30*time.Second, "Request timeout")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*serverURL, nil)
	if err := run(ctx, c, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "healthctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	switch args[0] {
	case "tool":
		if len(args) < 2 {
			return fmt.Errorf("usage: healthctl tool <name> '<json args>'")
		}
		toolArgs, err := parseArgs(args[2:])
		if err != nil {
			return err
		}
		var result json.RawMessage
		if err := c.CallTool(ctx, args[1], toolArgs, &result); err != nil {
			return err
		}
		return printJSON(out, result)

	case "tools":
		tools, err := c.Tools(ctx)
		if err != nil {
			return err
		}
		for _, t := range tools {
			fmt.Fprintf(out, "%-22s %s\n", t.Name, t.Title)
		}
		return nil

	case "recommend":
		if len(args) < 2 {
			return fmt.Errorf("usage: healthctl recommend <text>")
		}
		tools, err := c.Recommend(ctx, strings.Join(args[1:], " "), *limit)
		if err != nil {
			return err
		}
		if len(tools) == 0 {
			fmt.Fprintln(out, "no matching tool")
			return nil
		}
		for _, t := range tools {
			fmt.Fprintf(out, "%-22s %s\n", t.Name, t.Title)
		}
		return nil

	case "usage":
		stats, err := c.UsageStats(ctx)
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Fprintf(out, "%-22s %6d  %s\n", s.Tool, s.Count, s.LastUsed.Format(time.RFC3339))
		}
		return nil

	case "export":
		if len(args) < 3 {
			return fmt.Errorf("usage: healthctl export '<json args>' <file.xlsx>")
		}
		exportArgs, err := parseArgs(args[1:2])
		if err != nil {
			return err
		}
		data, err := c.ExportVaccination(ctx, exportArgs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[2], data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[2], err)
		}
		fmt.Fprintf(out, "wrote %s (%d bytes)\n", args[2], len(data))
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseArgs(rest []string) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if len(rest) == 0 || strings.TrimSpace(rest[0]) == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(rest[0]), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	return args, nil
}

func printJSON(out io.Writer, raw json.RawMessage) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: healthctl [flags] <command> [args]

commands:
  tool <name> '<json args>'        run a calculator
  tools                            list calculators
  recommend <text>                 suggest calculators for free text
  usage                            per-tool usage counts
  export '<json args>' <file>      download the vaccination schedule as XLSX

flags:
`)
	flag.PrintDefaults()
}
