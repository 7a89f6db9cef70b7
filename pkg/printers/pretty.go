package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/stats"
	"tableflip.dev/bakelog/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Bakes renders journal entries as aligned rows: day, title, rating,
// duration, tags.
func (pp *PrettyPrint) Bakes(bakes ...*record.Bake) {
	if len(bakes) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, b := range bakes {
		row := []interface{}{b.On.String(), b.Title, ratings(b.Taste, b.Difficulty), duration(b.Hours, b.Minutes), strings.Join(b.Tags, ",")}
		if pp.ShowID {
			row = append([]interface{}{b.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) UpcomingBakes(upcoming ...*record.Upcoming) {
	if len(upcoming) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, u := range upcoming {
		row := []interface{}{u.On.String(), u.Title, u.Link}
		if pp.ShowID {
			row = append([]interface{}{u.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) Ideas(ideas ...*record.Idea) {
	if len(ideas) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, i := range ideas {
		if pp.ShowID {
			_, _ = y.Print(i.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(i.ID)))
		}
		_, _ = t.Printf("• %s\n", i.Name)
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) Recipes(recipes ...*record.Recipe) {
	if len(recipes) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range recipes {
		row := []interface{}{r.Title, r.Source}
		if pp.ShowID {
			row = append([]interface{}{r.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats renders one resolved window's metrics.
func (pp *PrettyPrint) Stats(w timeutil.Window, s stats.Summary) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	p := color.New()

	_, _ = b.Print(w.Label)
	if w.Sublabel != "" {
		_, _ = f.Printf(" %s", w.Sublabel)
	}
	_, _ = p.Println("")

	switch s.Count {
	case 1:
		_, _ = p.Printf("  %d bake", s.Count)
	default:
		_, _ = p.Printf("  %d bakes", s.Count)
	}
	_, _ = f.Printf(", %dh in the kitchen\n\n", s.TotalHours)
}

func ratings(taste, difficulty int) string {
	if taste == 0 && difficulty == 0 {
		return ""
	}
	return fmt.Sprintf("t:%d d:%d", taste, difficulty)
}

func duration(hours, minutes int) string {
	if hours == 0 && minutes == 0 {
		return ""
	}
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}
