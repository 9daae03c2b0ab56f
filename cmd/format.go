package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// printSection prints a bold green section title.
func printSection(title string) {
	fmt.Println(color.New(color.FgGreen, color.Bold).Sprint(title))
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

// padCenter is centerText padded on both sides to exactly width.
func padCenter(s string, width int) string {
	s = centerText(s, width)
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// renderBar draws value as a horizontal bar scaled against max.
func renderBar(value, max, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	filled := value * width / max
	if filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled)
}

// renderProgress renders a progress bar like [████░░░░]  45.0%. The bar is
// red below a third, yellow below two thirds and green above.
func renderProgress(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	c := color.New(color.FgGreen)
	switch {
	case percent < 33:
		c = color.New(color.FgRed)
	case percent < 66:
		c = color.New(color.FgYellow)
	}
	return fmt.Sprintf("[%s] %5.1f%%", c.Sprint(bar), percent)
}

// palette colors workout types in calendars and legends.
var palette = []color.Attribute{
	color.FgRed, color.FgGreen, color.FgYellow,
	color.FgBlue, color.FgMagenta, color.FgCyan,
}

// typeColors assigns palette colors to types in the order given.
func typeColors(types []string) map[string]func(a ...interface{}) string {
	colors := make(map[string]func(a ...interface{}) string, len(types))
	for i, t := range types {
		colors[t] = color.New(palette[i%len(palette)]).SprintFunc()
	}
	return colors
}
