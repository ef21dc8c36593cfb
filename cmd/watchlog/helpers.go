package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"watchlog/internal/engine"
)

// rangeFlags are the shared row-window flags. Each action validates its own
// allowed combination before any workbook access.
type rangeFlags struct {
	start int
	end   int
	chunk int
	auto  bool
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.start, "start", 0, "First row of the scan window")
	cmd.Flags().IntVar(&f.end, "end", 0, "Last row of the scan window (inclusive)")
	cmd.Flags().IntVar(&f.chunk, "chunk", 0, "Process at most this many rows")
	cmd.Flags().BoolVar(&f.auto, "auto", false, "Locate the first unprocessed row automatically")
}

func (f rangeFlags) window() engine.Range {
	return engine.Range{Start: f.start, End: f.end, Chunk: f.chunk, Auto: f.auto}
}

func validateLinksFlags(f rangeFlags) error {
	switch {
	case f.auto:
		return nil
	case f.start > 0 && f.end > 0:
		if f.end <= f.start {
			return fmt.Errorf("--end (%d) must be greater than --start (%d)", f.end, f.start)
		}
		return nil
	case f.start > 0 && f.chunk > 0:
		return nil
	default:
		return errors.New("links needs --start with --end, --start with --chunk, --auto with --chunk, or --auto alone")
	}
}

func validateRoutinesFlags(f rangeFlags) error {
	if f.start <= 0 {
		return errors.New("routines requires --start")
	}
	if f.end > 0 || f.chunk > 0 || f.auto {
		return errors.New("routines cannot be combined with --end, --chunk, or --auto")
	}
	return nil
}

// outputFlags control result-file creation.
type outputFlags struct {
	write      bool
	customName string
	unique     bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.write, "output", "o", false, "Write the result to a JSON file in the outputs directory")
	cmd.Flags().StringVar(&f.customName, "custom-name", "", "Custom suffix for the output file name")
	cmd.Flags().BoolVar(&f.unique, "unique", false, "Use a UUID suffix for the output file name")
}

// persist writes the result file when requested and reports where it went.
func (f outputFlags) persist(cmd *cobra.Command, s *session, result any) error {
	if !f.write {
		return nil
	}
	path, err := s.writer.WriteResult(result, f.customName, f.unique)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Result written to %s\n", path)
	}
	return nil
}
