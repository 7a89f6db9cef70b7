package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/bakelog/pkg/calendar"
	"tableflip.dev/bakelog/pkg/record"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid. Days with completed bakes are bright, days
// with only planned bakes are cyan, today is underlined.
func (pp *PrettyPrint) Calendar(anchor time.Time, ix calendar.Index) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", anchor.Month().String(), anchor.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	empty := color.New(color.Faint, color.FgWhite)
	done := color.New(color.Bold, color.FgHiGreen)
	planned := color.New(color.FgCyan)
	todayDone := color.New(color.Bold, color.FgHiGreen, color.Underline)
	todayEmpty := color.New(color.Faint, color.FgWhite, color.Underline)
	todayPlanned := color.New(color.FgCyan, color.Underline)

	cells := calendar.MonthCells(anchor, record.Today(), ix)
	col := 0
	for _, c := range cells {
		if c.Blank() {
			fmt.Print("   ")
		} else {
			printer := empty
			switch {
			case c.Completed && c.Today:
				printer = todayDone
			case c.Completed:
				printer = done
			case c.Planned && c.Today:
				printer = todayPlanned
			case c.Planned:
				printer = planned
			case c.Today:
				printer = todayEmpty
			}
			printer.Printf("%2d ", c.Day)
		}

		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
