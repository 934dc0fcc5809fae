package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type footerState struct {
	Mode      string
	ModeInput string

	FileName string

	PeakLabel   string
	TroughLabel string

	Peaks   int
	Troughs int
	View    string

	StatusMessage string
	Legend        string // may carry ANSI styling
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "VIEW"
	}
	if st.PeakLabel == "" {
		st.PeakLabel = "any"
	}
	if st.TroughLabel == "" {
		st.TroughLabel = "any"
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1
	boundValW := 10
	boundsFixedW := runeWidth(fmt.Sprintf("[PEAK ≥ %s] · [TROUGH ≤ %s]", strings.Repeat("X", boundValW), strings.Repeat("X", boundValW)))

	rightPlain := fmt.Sprintf(" ▲ %d ▼ %d · %s", st.Peaks, st.Troughs, st.View)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := min(runeWidth(st.Mode)+2, max(0, leftW/4))
	boundsColW := boundsFixedW
	fileColW := leftW - modeColW - boundsColW - 2*gapW
	if fileColW < 0 {
		boundsColW = max(0, boundsColW+fileColW)
		fileColW = leftW - modeColW - boundsColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	boundsSeg := renderBoundsSegment(boundsColW, st, styles, boundValW)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + boundsSeg
	leftWActual := modeColW + fileColW + boundsColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendW := lipgloss.Width(st.Legend)
	legend := st.Legend
	if legendW > width {
		legend, legendW = "", 0
	}
	leftW := width - legendW

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	line := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legend, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no data)"
	}
	remaining := colW
	filePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runeWidth(filePlain)

	inputPlain := ""
	if remaining > 0 && st.ModeInput != "" {
		inputPlain = truncatePlain(" ▸ "+st.ModeInput, remaining)
		remaining -= runeWidth(inputPlain)
	}

	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func renderBoundsSegment(colW int, st footerState, styles footerStyles, valW int) string {
	if colW <= 0 {
		return ""
	}
	peak := truncatePlain(st.PeakLabel, valW)
	trough := truncatePlain(st.TroughLabel, valW)

	plain := fmt.Sprintf("[PEAK ≥ %s] · [TROUGH ≤ %s]", peak, trough)
	plain = truncatePlain(plain, colW)
	plain = padRightPlain(plain, colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func modeLabel(md mode, cmd Command) string {
	switch md {
	case modeZoom:
		return "ZOOM"
	case modeCommand:
		switch cmd {
		case CmdOpen:
			return "OPEN"
		case CmdPeakMin:
			return "PEAK MIN"
		case CmdTroughMax:
			return "TROUGH MAX"
		}
	}
	return "VIEW"
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + "0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

// ansiColor renders c for the active colour profile; plain terminals get nothing.
func ansiColor(isBg bool, c lipgloss.Color) string {
	value := string(c)
	if value == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	if _, plain := tc.(termenv.NoColor); plain {
		return ""
	}
	return termenv.CSI + tc.Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}
