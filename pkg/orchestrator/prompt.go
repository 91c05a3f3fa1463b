package orchestrator

import (
	"fmt"
	"strings"
	"time"
)

// The persona block is fixed; date/time and the caller-supplied context block
// are spliced in per turn.
const personaPrompt = `Du är en personlig AI-assistent med tillgång till användarens mail, kalender, todos, smartminne, kvitton, prenumerationer, filarkiv och hälsodata via verktyg.

Använd verktygen när frågan kräver färsk information istället för att gissa. Svara på svenska, kort och koncist. Referera till tidigare minnen och kontext när det är relevant.`

// Stockholm is the assistant's home timezone; dates in the system prompt are
// rendered there regardless of server locale.
var stockholm = loadStockholm()

func loadStockholm() *time.Location {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		return time.UTC
	}
	return loc
}

var swedishWeekdays = [...]string{
	"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag",
}

var swedishMonths = [...]string{
	"januari", "februari", "mars", "april", "maj", "juni",
	"juli", "augusti", "september", "oktober", "november", "december",
}

// formatSwedishTime renders "måndag 1 september 2025, 14:32" in the home
// timezone.
func formatSwedishTime(t time.Time) string {
	t = t.In(stockholm)
	return fmt.Sprintf("%s %d %s %d, %02d:%02d",
		swedishWeekdays[t.Weekday()], t.Day(), swedishMonths[t.Month()-1], t.Year(),
		t.Hour(), t.Minute())
}

// buildSystemPrompt concatenates the persona block, the current date/time,
// and the optional caller context block.
func buildSystemPrompt(now time.Time, contextBlock string) string {
	var b strings.Builder
	b.WriteString(personaPrompt)
	b.WriteString("\n\nAktuell tid: ")
	b.WriteString(formatSwedishTime(now))

	if contextBlock != "" {
		b.WriteString("\n\nAktuell kontext:\n")
		b.WriteString(contextBlock)
	}

	return b.String()
}
