// Package options holds the shared flag structs and argument parsing for the
// command tree.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/bakelog/pkg/record"
)

// IDOptions toggles record-id output.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVarP(&io.ShowID, "show-ids", "i", false, "Show record ids.")
}

// BakeOptions carries the journal-entry flags.
type BakeOptions struct {
	On         string
	Taste      int
	Difficulty int
	Hours      int
	Minutes    int
	Notes      string
	Tags       []string
	Source     string
}

func AddBakeArgs(cmd *cobra.Command, bo *BakeOptions) {
	cmd.Flags().StringVar(&bo.On, "on", "today", "Bake day (YYYY-MM-DD, today, yesterday).")
	cmd.Flags().IntVar(&bo.Taste, "taste", 0, "Taste rating.")
	cmd.Flags().IntVar(&bo.Difficulty, "difficulty", 0, "Difficulty rating.")
	cmd.Flags().IntVar(&bo.Hours, "hours", 0, "Whole hours spent.")
	cmd.Flags().IntVar(&bo.Minutes, "minutes", 0, "Minutes spent (0-59).")
	cmd.Flags().StringVar(&bo.Notes, "notes", "", "Free-text notes.")
	cmd.Flags().StringSliceVar(&bo.Tags, "tags", nil, "Category tags.")
	cmd.Flags().StringVar(&bo.Source, "source", "", "Recipe source reference.")
}

// PlanOptions carries the upcoming-bake flags.
type PlanOptions struct {
	On     string
	Link   string
	Notes  string
	Recipe string
}

func AddPlanArgs(cmd *cobra.Command, po *PlanOptions) {
	cmd.Flags().StringVar(&po.On, "on", "", "Planned day (YYYY-MM-DD, today, tomorrow).")
	cmd.Flags().StringVar(&po.Link, "link", "", "Optional link.")
	cmd.Flags().StringVar(&po.Notes, "notes", "", "Optional notes.")
	cmd.Flags().StringVar(&po.Recipe, "recipe", "", "Saved recipe id.")
}

// MonthOptions selects a calendar/stats anchor month.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, mo *MonthOptions) {
	cmd.Flags().StringVar(&mo.Month, "month", "", "Anchor month (YYYY-MM); defaults to the current month.")
}

// Anchor resolves the flag to the first of the requested month.
func (mo *MonthOptions) Anchor() (time.Time, error) {
	if mo.Month == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01", mo.Month, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", mo.Month)
	}
	return t, nil
}

// ParseDay resolves user-supplied day arguments, including the relative
// aliases the commands advertise.
func ParseDay(s string) (record.DayKey, error) {
	switch s {
	case "", "today":
		return record.Today(), nil
	case "yesterday":
		return record.Today().AddDays(-1), nil
	case "tomorrow":
		return record.Today().AddDays(1), nil
	}
	return record.ParseDayKey(s)
}
