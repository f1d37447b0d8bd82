package drift

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	diffHunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	diffDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

type editOp int

const (
	opKeep editOp = iota
	opAdd
	opDel
)

type editLine struct {
	oldNum  int
	newNum  int
	content string
	op      editOp
}

const diffContext = 3

// Diff returns a styled unified diff between the on-disk artifact and
// the regenerated content. Empty string when they match.
func Diff(f DriftedFile) string {
	oldLines := splitLines(f.Actual)
	newLines := splitLines(f.Expected)

	if len(oldLines) > 10000 || len(newLines) > 10000 {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	script := editScript(oldLines, newLines)
	hunks := groupHunks(script)
	if len(hunks) == 0 {
		return ""
	}

	width := terminalWidth()

	var sb strings.Builder
	sb.WriteString(diffHeaderStyle.Render("--- "+f.Path) + "\n")
	sb.WriteString(diffHeaderStyle.Render("+++ "+f.Path+" (regenerated)") + "\n")
	for _, h := range hunks {
		sb.WriteString(formatHunk(h, width))
	}
	return sb.String()
}

// editScript computes the shortest edit script between two line slices
// using the Myers difference algorithm.
func editScript(old, newer []string) []editLine {
	n, m := len(old), len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	var trace []map[int]int

	for d := 0; d <= maxD; d++ {
		snapshot := make(map[int]int, len(v))
		for k, val := range v {
			snapshot[k] = val
		}
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1]
			} else {
				x = v[k-1] + 1
			}
			y := x - k
			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}
			v[k] = x
			if x >= n && y >= m {
				return backtrack(trace, old, newer)
			}
		}
	}
	return backtrack(trace, old, newer)
}

func backtrack(trace []map[int]int, old, newer []string) []editLine {
	var reversed []editLine
	x, y := len(old), len(newer)

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			reversed = append(reversed, editLine{oldNum: x + 1, newNum: y + 1, content: old[x], op: opKeep})
		}

		if d > 0 {
			if x == prevX {
				y--
				reversed = append(reversed, editLine{newNum: y + 1, content: newer[y], op: opAdd})
			} else {
				x--
				reversed = append(reversed, editLine{oldNum: x + 1, content: old[x], op: opDel})
			}
		}
	}

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

type diffHunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []editLine
}

func groupHunks(script []editLine) []diffHunk {
	var hunks []diffHunk
	var current *diffHunk

	for i, line := range script {
		if line.op != opKeep {
			if current == nil {
				start := i - diffContext
				if start < 0 {
					start = 0
				}
				current = &diffHunk{}
				current.lines = append(current.lines, script[start:i]...)
			}
			current.lines = append(current.lines, line)
			continue
		}

		if current == nil {
			continue
		}
		current.lines = append(current.lines, line)

		trailing := 1
		for j := i + 1; j < len(script) && script[j].op == opKeep; j++ {
			trailing++
		}
		if trailing > diffContext*2 && i < len(script)-1 {
			trim := trailing - diffContext
			if trim > 0 && trim <= len(current.lines) {
				current.lines = current.lines[:len(current.lines)-trim]
			}
			sealHunk(current)
			hunks = append(hunks, *current)
			current = nil
		}
	}

	if current != nil {
		sealHunk(current)
		hunks = append(hunks, *current)
	}
	return hunks
}

func sealHunk(h *diffHunk) {
	for _, line := range h.lines {
		if line.oldNum > 0 && (h.oldStart == 0 || line.oldNum < h.oldStart) {
			h.oldStart = line.oldNum
		}
		if line.newNum > 0 && (h.newStart == 0 || line.newNum < h.newStart) {
			h.newStart = line.newNum
		}
		if line.op != opAdd {
			h.oldCount++
		}
		if line.op != opDel {
			h.newCount++
		}
	}
}

func formatHunk(h diffHunk, width int) string {
	var sb strings.Builder

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	sb.WriteString(diffHunkStyle.Render(header) + "\n")

	for _, line := range h.lines {
		content := truncateLine(line.content, width-4)
		switch line.op {
		case opAdd:
			sb.WriteString(diffAddStyle.Render("+"+content) + "\n")
		case opDel:
			sb.WriteString(diffDelStyle.Render("-"+content) + "\n")
		default:
			sb.WriteString(" " + content + "\n")
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 3 {
		maxWidth = 80
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	return string(runes[:maxWidth-3]) + "..."
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
