package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosbc/internal/foundation"
)

// SketchData holds data for drawing a foundation cross-section sketch
type SketchData struct {
	Foundation foundation.Size

	// WaterLevel is the depth of the water table below ground surface (m).
	// +Inf when no water table applies.
	WaterLevel float64

	// Results
	UltimateCapacity float64 // kN/m²
}

// DrawFoundationSketch creates an ASCII cross-section of the foundation:
// ground line, embedment depth, footing and water table marker.
func DrawFoundationSketch(data SketchData) string {
	var sb strings.Builder

	fs := data.Foundation
	widthChars := 24
	depthChars := 10

	// Vertical scale: embedment depth mapped onto depthChars rows
	waterLine := -1
	if !math.IsInf(data.WaterLevel, 1) && fs.Depth > 0 && data.WaterLevel <= fs.Depth {
		waterLine = int(data.WaterLevel / fs.Depth * float64(depthChars))
	}

	sb.WriteString("\n")
	sb.WriteString("  FOUNDATION CROSS-SECTION\n")
	sb.WriteString("  ────────────────────────\n\n")

	sb.WriteString(fmt.Sprintf("  ▔▔▔▔▔▔▔▔▔▔%s▔▔▔▔▔▔▔▔▔▔  ground surface\n", strings.Repeat("▔", widthChars)))

	for i := 0; i < depthChars; i++ {
		pad := strings.Repeat(" ", widthChars+10)
		switch i {
		case waterLine:
			sb.WriteString(fmt.Sprintf("  %s▽ water table (%.2f m)\n", pad, data.WaterLevel))
		case depthChars / 2:
			sb.WriteString(fmt.Sprintf("  %s│ Df = %.2f m\n", pad, fs.Depth))
		default:
			sb.WriteString(fmt.Sprintf("  %s│\n", pad))
		}
	}

	half := strings.Repeat(" ", 10)
	top := strings.Repeat("─", widthChars)
	fill := strings.Repeat("░", widthChars)

	sb.WriteString(fmt.Sprintf("  %s┌%s┐\n", half, top))
	sb.WriteString(fmt.Sprintf("  %s│%s│  %s footing\n", half, fill, fs.Footing.Shape))
	sb.WriteString(fmt.Sprintf("  %s└%s┘\n", half, top))

	if math.IsInf(fs.Length(), 1) {
		sb.WriteString(fmt.Sprintf("  %s B = %.2f m (continuous)\n", half, fs.Width()))
	} else {
		sb.WriteString(fmt.Sprintf("  %s B = %.2f m, L = %.2f m\n", half, fs.Width(), fs.Length()))
	}
	if fs.Eccentricity > 0 {
		sb.WriteString(fmt.Sprintf("  %s e = %.2f m, B' = %.2f m\n", half, fs.Eccentricity, fs.EffectiveWidth()))
	}
	if data.UltimateCapacity > 0 {
		sb.WriteString(fmt.Sprintf("\n  q_u = %.2f kN/m²\n", data.UltimateCapacity))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
