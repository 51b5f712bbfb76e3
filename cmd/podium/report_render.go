package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"podium/internal/analysis"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func scoreColor(score int) string {
	switch {
	case score >= 80:
		return ansiGreen
	case score >= 50:
		return ansiYellow
	default:
		return ansiRed
	}
}

func renderScoreLine(label string, score int, colorize bool) string {
	value := fmt.Sprintf("%3d / 100", score)
	if colorize {
		value = scoreColor(score) + value + ansiReset
	}
	return fmt.Sprintf("  %-14s %s", label+":", value)
}

// renderReport writes a human-readable report to w.
func renderReport(w io.Writer, title string, durationMinutes float64, report *analysis.Report) {
	colorize := shouldColorize(w)

	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "  Duration: %.1f min, pace %d wpm\n", durationMinutes, report.Pacing.WordsPerMinute)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Scores")
	fmt.Fprintln(w, renderScoreLine("Clarity", report.Scores.Clarity, colorize))
	fmt.Fprintln(w, renderScoreLine("Conciseness", report.Scores.Conciseness, colorize))
	fmt.Fprintln(w, renderScoreLine("Confidence", report.Scores.Confidence, colorize))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Filler words: %d total, %.1f per minute\n", report.FillerWords.Count, report.FillerWords.RatePerMinute)
	if len(report.FillerWords.Instances) > 0 {
		rows := make([][]string, 0, len(report.FillerWords.Instances))
		for _, inst := range report.FillerWords.Instances {
			rows = append(rows, []string{inst.Word, strconv.Itoa(inst.Position)})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Word", "Position"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Repetition")
	if len(report.Repetitions.RepeatedWords) == 0 && len(report.Repetitions.RepeatedPhrases) == 0 {
		fmt.Fprintln(w, "  No notable repetition")
	}
	if len(report.Repetitions.RepeatedWords) > 0 {
		rows := make([][]string, 0, len(report.Repetitions.RepeatedWords))
		for _, word := range report.Repetitions.RepeatedWords {
			rows = append(rows, []string{word.Word, strconv.Itoa(word.Count)})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Word", "Count"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	if len(report.Repetitions.RepeatedPhrases) > 0 {
		rows := make([][]string, 0, len(report.Repetitions.RepeatedPhrases))
		for _, phrase := range report.Repetitions.RepeatedPhrases {
			rows = append(rows, []string{phrase.Phrase, strconv.Itoa(phrase.Count)})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Phrase", "Count"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sentence starters: %d sentences\n", report.SentenceStarters.Total)
	if len(report.SentenceStarters.Weak) > 0 {
		rows := make([][]string, 0, len(report.SentenceStarters.Weak))
		for _, starter := range report.SentenceStarters.Weak {
			rows = append(rows, []string{starter.Word, strconv.Itoa(starter.Count)})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Starter", "Count"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Weak words: %d\n", len(report.WeakWords))
	if len(report.WeakWords) > 0 {
		rows := make([][]string, 0, len(report.WeakWords))
		for _, inst := range report.WeakWords {
			rows = append(rows, []string{inst.Word, truncateSentence(inst.Sentence, 60)})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Word", "Sentence"},
			rows,
			[]columnAlignment{alignLeft, alignLeft},
		))
	}
}

func truncateSentence(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
