package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyplan/internal/timetable"
)

// Plan renders the full plan: header, every day, then the summaries.
func Plan(plan *timetable.Plan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Study plan · %d days · generated %s",
		plan.SpanDays, plan.GeneratedAt.Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")
	for i := range plan.Days {
		b.WriteString(Day(&plan.Days[i]))
		b.WriteString("\n")
	}
	b.WriteString(Summaries(plan))
	return b.String()
}

// Day renders one day schedule as an indented slot list.
func Day(day *timetable.DaySchedule) string {
	var b strings.Builder
	header := fmt.Sprintf("%s (%s) — %d min scheduled, %d min done",
		day.Date, day.Weekday, day.TotalMinutes, day.CompletedMinutes)
	b.WriteString(dayHeaderStyle.Render(header))
	b.WriteString("\n")
	for i := range day.Slots {
		b.WriteString("  ")
		b.WriteString(slotLine(&day.Slots[i]))
		b.WriteString("\n")
	}
	return b.String()
}

func slotLine(slot *timetable.TimeSlot) string {
	badge, ok := kindBadge[string(slot.Kind)]
	if !ok {
		badge = string(slot.Kind)
	}

	span := fmt.Sprintf("%s–%s", slot.Start, slot.End)
	if slot.Kind == timetable.SlotRest {
		span = fmt.Sprintf("%s (%d min)", timetable.RestSentinel, slot.Minutes)
	}

	label := slot.SubjectName
	if slot.TopicTitle != "" {
		label += " — " + slot.TopicTitle
	}
	if slot.Note != "" {
		label += dimStyle.Render(" · " + slot.Note)
	}

	line := fmt.Sprintf("%s  %-13s %s", badge, span, label)
	switch slot.Status {
	case timetable.StatusDone:
		line += "  " + doneStyle.Render("✓")
	case timetable.StatusMissed:
		line += "  " + missedStyle.Render("✗ missed")
	}
	return strings.TrimRight(line, " ")
}

// Summaries renders the per-subject completion block.
func Summaries(plan *timetable.Plan) string {
	if len(plan.Summaries) == 0 {
		return dimStyle.Render("No subjects in this plan.") + "\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Subjects"))
	b.WriteString("\n")
	for _, s := range plan.Summaries {
		b.WriteString(fmt.Sprintf("  %s %s  %d min done, %d min left\n",
			progressBar(s.Completion), bodyStyle.Render(s.SubjectName),
			s.AllocatedMinutes, s.RemainingMinutes))
		b.WriteString(dimStyle.Render("           next: " + s.NextSession))
		b.WriteString("\n")
	}
	return b.String()
}

// progressBar renders a 10-cell completion bar like [████······].
func progressBar(completion float64) string {
	if completion < 0 {
		completion = 0
	}
	if completion > 1 {
		completion = 1
	}
	filled := int(completion*10 + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("·", 10-filled)
	return doneStyle.Render("[" + bar + "]")
}
