package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatAttr(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// renderLinks prints the enrichment result, as a table on a terminal and as
// JSON otherwise.
func renderLinks(cmd *cobra.Command, result map[string]map[string]any) error {
	if !stdoutIsTTY() {
		return writeJSON(cmd, result)
	}

	links := make([]string, 0, len(result))
	for link := range result {
		links = append(links, link)
	}
	sort.Strings(links)

	rows := make([][]string, 0, len(links))
	for _, link := range links {
		attrs := result[link]
		rows = append(rows, []string{
			link,
			formatAttr(attrs["Duration"]),
			formatAttr(attrs["Published"]),
			formatAttr(attrs["Author"]),
			formatAttr(attrs["Exist"]),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(linkColumns, rows))
	return nil
}

func renderRoutines(cmd *cobra.Command, result map[string]map[string]float64) error {
	if !stdoutIsTTY() {
		return writeJSON(cmd, result)
	}

	dates := make([]string, 0, len(result))
	for date := range result {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var rows [][]string
	for _, date := range dates {
		colors := make([]string, 0, len(result[date]))
		for color := range result[date] {
			colors = append(colors, color)
		}
		sort.Strings(colors)
		for _, color := range colors {
			rows = append(rows, []string{
				date,
				color,
				strconv.FormatFloat(result[date][color], 'f', 2, 64),
			})
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(routineColumns, rows))
	return nil
}

func renderDuplicates(cmd *cobra.Command, result map[string][]int) error {
	if !stdoutIsTTY() {
		return writeJSON(cmd, result)
	}

	links := make([]string, 0, len(result))
	for link := range result {
		links = append(links, link)
	}
	sort.Strings(links)

	rows := make([][]string, 0, len(links))
	for _, link := range links {
		positions := make([]string, 0, len(result[link]))
		for _, idx := range result[link] {
			positions = append(positions, strconv.Itoa(idx))
		}
		rows = append(rows, []string{link, strings.Join(positions, ", ")})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(duplicateColumns, rows))
	return nil
}
