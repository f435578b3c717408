package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/maze-chase/internal/game"
)

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var copyOut bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autoplay runs")
	flag.IntVar(&frames, "frames", 3600, "maximum frames per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&copyOut, "copy", false, "also copy the report to the clipboard")
	flag.BoolVar(&verbose, "v", false, "print every event of every run")
	flag.Parse()

	if err := validate(runs, frames); err != nil {
		fmt.Println("error:", err)
		return
	}

	out := report(runs, frames, seedBase, seedStep, verbose)
	fmt.Print(out)

	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Println("error: copy to clipboard:", err)
		}
	}
}

func validate(runs, frames int) error {
	if runs <= 0 {
		return fmt.Errorf("-runs must be > 0")
	}
	if frames <= 0 {
		return fmt.Errorf("-frames must be > 0")
	}
	return nil
}

// runOne plays a single seeded autopilot game.
func runOne(seed int64, frames int) (game.RunReport, *game.EventLog, error) {
	hs, err := game.NewHeadlessSim(seed)
	if err != nil {
		return game.RunReport{}, nil, err
	}
	hs.RunFrames(frames)
	return hs.Report(), hs.Log, nil
}

func report(runs, frames int, seedBase, seedStep int64, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Headless Maze Chase Report ===\n")
	fmt.Fprintf(&b, "runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]game.RunReport, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		r, events, err := runOne(seed, frames)
		if err != nil {
			fmt.Fprintf(&b, "run %d seed=%d error: %v\n\n", i+1, seed, err)
			continue
		}
		all = append(all, r)
		fmt.Fprintf(&b, "--- run %d ---\n", i+1)
		b.WriteString(r.Format())
		if verbose {
			b.WriteString(events.Dump())
		}
		b.WriteByte('\n')
	}
	b.WriteString(game.FormatAggregate(all))
	return b.String()
}
