// Package stats aggregates a couple's records into the relationship
// counters shown on the dashboard and the "our story" page.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/streak"
)

// MoodTrendWindow is how far back the mood trend looks.
const MoodTrendWindow = 14 * 24 * time.Hour

// Input is everything the aggregator needs for one couple.
type Input struct {
	Memories         []*models.Memory
	Journals         []*models.Journal
	Letters          []*models.Letter
	LoveNotes        []*models.LoveNote
	Reflections      []*models.Reflection
	TogetherSince    *time.Time
	AccountCreatedAt time.Time
}

// Streaks are the four dashboard counters
type Streaks struct {
	DaysTogether       int `json:"days_together"`
	DaysSinceLastFight int `json:"days_since_last_fight"`
	JournalStreak      int `json:"journal_streak"`
	GratitudeStreak    int `json:"gratitude_streak"`
}

// MoodCount is the most frequent journal mood
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MonthCount is the month with the most memories and journals
type MonthCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RelationshipStats is the full "our story" summary
type RelationshipStats struct {
	Streaks
	TotalMemories int         `json:"total_memories"`
	TotalJournals int         `json:"total_journals"`
	TotalLetters  int         `json:"total_letters"`
	TotalNotes    int         `json:"total_notes"`
	TotalEntries  int         `json:"total_entries"`
	OpenedLetters int         `json:"opened_letters"`
	TotalWords    int         `json:"total_words"`
	TopMood       *MoodCount  `json:"top_mood"`
	BusiestMonth  *MonthCount `json:"busiest_month"`
	OnThisDay     OnThisDay   `json:"on_this_day"`
}

// DaysTogether counts whole days since togetherSince, falling back to the
// account creation date. The result is never below 1.
func DaysTogether(togetherSince *time.Time, accountCreatedAt, now time.Time) int {
	from := accountCreatedAt
	if togetherSince != nil {
		from = *togetherSince
	}
	if days := calendar.DaysSince(from, now); days > 1 {
		return days
	}
	return 1
}

// DaysSinceLastFight counts whole days since the most recent reflection.
// With no reflection at all the couple has been at peace since the beginning.
func DaysSinceLastFight(reflections []*models.Reflection, daysTogether int, now time.Time) int {
	var last *models.Reflection
	for _, r := range reflections {
		if last == nil || r.CreatedAt.After(last.CreatedAt) {
			last = r
		}
	}
	if last == nil {
		return daysTogether
	}
	return calendar.DaysSince(last.CreatedAt, now)
}

// JournalStreak is the current streak of days with a journal entry
func JournalStreak(journals []*models.Journal, now time.Time) int {
	return streak.Current(journals, func(j *models.Journal) time.Time { return j.Date }, now)
}

// GratitudeStreak is the current streak of days with a love note
func GratitudeStreak(notes []*models.LoveNote, now time.Time) int {
	return streak.Current(notes, func(n *models.LoveNote) time.Time { return n.CreatedAt }, now)
}

// ComputeStreaks fills the four dashboard counters.
func ComputeStreaks(in Input, now time.Time) Streaks {
	together := DaysTogether(in.TogetherSince, in.AccountCreatedAt, now)
	return Streaks{
		DaysTogether:       together,
		DaysSinceLastFight: DaysSinceLastFight(in.Reflections, together, now),
		JournalStreak:      JournalStreak(in.Journals, now),
		GratitudeStreak:    GratitudeStreak(in.LoveNotes, now),
	}
}

// Aggregate builds the complete relationship summary at now.
func Aggregate(in Input, now time.Time) RelationshipStats {
	st := RelationshipStats{
		Streaks:       ComputeStreaks(in, now),
		TotalMemories: len(in.Memories),
		TotalJournals: len(in.Journals),
		TotalLetters:  len(in.Letters),
		TotalNotes:    len(in.LoveNotes),
		OnThisDay:     FindOnThisDay(in.Memories, in.Journals, now),
	}
	st.TotalEntries = st.TotalMemories + st.TotalJournals + st.TotalLetters + st.TotalNotes

	for _, l := range in.Letters {
		if !now.Before(l.OpenDate) {
			st.OpenedLetters++
		}
	}

	moods := newCounter()
	for _, j := range in.Journals {
		st.TotalWords += len(strings.Fields(j.Content))
		moods.add(string(j.Mood))
	}
	if mood, n, ok := moods.top(); ok {
		st.TopMood = &MoodCount{Mood: mood, Count: n}
	}

	months := newCounter()
	loc := now.Location()
	for _, m := range in.Memories {
		months.add(monthLabel(m.Date, loc))
	}
	for _, j := range in.Journals {
		months.add(monthLabel(j.Date, loc))
	}
	if month, n, ok := months.top(); ok {
		st.BusiestMonth = &MonthCount{Name: month, Count: n}
	}

	return st
}

func monthLabel(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// counter is a frequency table that remembers first-seen order, so ties go
// to whichever key the iteration met first.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top() (string, int, bool) {
	best, bestN := "", 0
	for _, key := range c.order {
		if n := c.counts[key]; n > bestN {
			best, bestN = key, n
		}
	}
	return best, bestN, bestN > 0
}

// OnThisDay holds records from today's month and day in earlier (or later) years
type OnThisDay struct {
	Memories   []*models.Memory  `json:"memories"`
	Journals   []*models.Journal `json:"journals"`
	HasContent bool              `json:"has_content"`
}

// FindOnThisDay matches records whose date shares now's month and day but
// not its year, so nothing written earlier today resurfaces.
func FindOnThisDay(memories []*models.Memory, journals []*models.Journal, now time.Time) OnThisDay {
	res := OnThisDay{
		Memories: []*models.Memory{},
		Journals: []*models.Journal{},
	}
	for _, m := range memories {
		if calendar.SameMonthDayOtherYear(m.Date, now) {
			res.Memories = append(res.Memories, m)
		}
	}
	for _, j := range journals {
		if calendar.SameMonthDayOtherYear(j.Date, now) {
			res.Journals = append(res.Journals, j)
		}
	}
	res.HasContent = len(res.Memories) > 0 || len(res.Journals) > 0
	return res
}

// MoodDay is the journal moods logged on one calendar day
type MoodDay struct {
	Date  string   `json:"date"`
	Moods []string `json:"moods"`
	Count int      `json:"count"`
}

// MoodTrend groups the journals of the last two weeks by calendar day,
// oldest day first.
func MoodTrend(journals []*models.Journal, now time.Time) []MoodDay {
	since := now.Add(-MoodTrendWindow)

	recent := make([]*models.Journal, 0, len(journals))
	for _, j := range journals {
		if !j.Date.Before(since) {
			recent = append(recent, j)
		}
	}
	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].Date.Before(recent[b].Date)
	})

	trend := []MoodDay{}
	index := make(map[string]int)
	for _, j := range recent {
		key := calendar.Key(j.Date, now.Location())
		i, ok := index[key]
		if !ok {
			i = len(trend)
			index[key] = i
			trend = append(trend, MoodDay{Date: key})
		}
		trend[i].Moods = append(trend[i].Moods, string(j.Mood))
		trend[i].Count++
	}
	return trend
}

// Countdown describes the next anniversary
type Countdown struct {
	MilestoneName string    `json:"milestone_name"`
	Target        time.Time `json:"target"`
	DaysUntil     int       `json:"days_until"`
	IsToday       bool      `json:"is_today"`
}

// CountdownTo returns nil when no anniversary is set.
func CountdownTo(anniversary *time.Time, milestoneName string, now time.Time) *Countdown {
	if anniversary == nil {
		return nil
	}
	loc := now.Location()
	target := calendar.NextOccurrence(*anniversary, now)
	return &Countdown{
		MilestoneName: milestoneName,
		Target:        target,
		DaysUntil:     calendar.DaysBetween(calendar.DateOf(now, loc), calendar.DateOf(target, loc)),
		IsToday:       calendar.IsAnniversary(*anniversary, now),
	}
}
