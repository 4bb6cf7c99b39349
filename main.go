package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"timewell/storage"
	"timewell/tracker"
	"timewell/tui"
)

const defaultFile = "timewell.json"

func main() {
	file := flag.String("file", defaultFile, "path to JSON store")
	reportFlag := flag.Bool("report", false, "print report and exit")
	days := flag.Int("days", 7, "report range in days (max 10)")
	exportFlag := flag.String("export", "", "export activities CSV into directory and exit")
	importFlag := flag.String("import", "", "import activities from CSV file and exit")
	configFlag := flag.String("config", "", "config in format key=value (trackstart=HH:MM or trackend=HH:MM)")

	flag.Parse()

	if dir := filepath.Dir(*file); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
			fmt.Fprintln(os.Stderr, "mkdir:", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[store] starting fresh, could not read previous state:", err)
	}
	t := tracker.Load(store)

	if *configFlag != "" {
		applyConfig(t, *configFlag)
		return
	}

	if *exportFlag != "" {
		path, err := t.ExportFile(*exportFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d activities to %s\n", len(t.Activities()), path)
		return
	}

	if *importFlag != "" {
		count, err := t.ImportFile(*importFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(1)
		}
		fmt.Printf("%d activities imported successfully.\n", count)
		return
	}

	if *reportFlag {
		report(t, *days)
		return
	}

	if err := tui.Run(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}

func applyConfig(t *tracker.Tracker, cfg string) {
	parts := strings.SplitN(cfg, "=", 2)
	if len(parts) != 2 {
		fmt.Fprintln(os.Stderr, "Invalid config format. Use key=value")
		os.Exit(1)
	}
	s := t.Settings()
	var err error
	switch parts[0] {
	case "trackstart":
		err = t.SetTrackingWindow(parts[1], s.TrackEnd)
	case "trackend":
		err = t.SetTrackingWindow(s.TrackStart, parts[1])
	default:
		fmt.Fprintln(os.Stderr, "Unknown config key:", parts[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid time format:", err)
		os.Exit(1)
	}
	fmt.Printf("Config updated: %s=%s\n", parts[0], parts[1])
}
