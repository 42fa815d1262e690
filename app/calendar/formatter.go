package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// localeNames holds the weekday/month vocabulary for one display
// locale. Weekdays are Sunday-first to line up with time.Weekday.
type localeNames struct {
	weekdays  [7]string
	months    [12]string
	dayFirst  bool // "Miércoles, 5 de junio" vs "Wednesday, June 5"
	connector string
}

var locales = map[language.Tag]localeNames{
	language.Spanish: {
		weekdays:  [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months:    [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		dayFirst:  true,
		connector: "de",
	},
	language.English: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	},
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.Spanish, // default
	language.English,
})

// Formatter computes the display strings for the response payload. It
// never binds a viewer timezone: the weekday and date are taken from
// the instant as the provider expressed it, and the raw start value
// travels alongside so a client can render the local time itself.
type Formatter struct {
	names localeNames
}

func NewFormatter(locale string) *Formatter {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	// Matcher may return a regional variant; walk back to the base
	// language registered in the table.
	base, _ := tag.Base()
	for registered, names := range locales {
		if b, _ := registered.Base(); b == base {
			return newFormatter(registered, names)
		}
	}
	return newFormatter(language.Spanish, locales[language.Spanish])
}

// newFormatter capitalizes the weekday vocabulary up front. A Caser is
// stateful and must not be shared between requests, so casing happens
// once here instead of per event.
func newFormatter(tag language.Tag, names localeNames) *Formatter {
	caser := cases.Title(tag)
	for i, day := range names.weekdays {
		names.weekdays[i] = caser.String(day)
	}
	return &Formatter{names: names}
}

// displayKind selects the display branch for one event. The whole
// formatting policy is this two-valued truth table:
//
//	hasTime  isRecurring  displayDate              displayTime
//	true     true         weekday name only        omitted (client computes)
//	true     false        full date                omitted (client computes)
//	false    true         weekday name only        n/a (all-day)
//	false    false        full date                n/a (all-day)
type displayKind struct {
	hasTime     bool
	isRecurring bool
}

var displayTable = map[displayKind]func(f *Formatter, t time.Time) string{
	{hasTime: true, isRecurring: true}:   (*Formatter).weekdayName,
	{hasTime: true, isRecurring: false}:  (*Formatter).fullDate,
	{hasTime: false, isRecurring: true}:  (*Formatter).weekdayName,
	{hasTime: false, isRecurring: false}: (*Formatter).fullDate,
}

// Run fills in the display fields of every event. DisplayTime is always
// left empty: for timed events the client derives the time-of-day from
// the raw start value in its own timezone, and all-day events have none.
func (f *Formatter) Run(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		render := displayTable[displayKind{hasTime: ev.HasTime, isRecurring: ev.IsRecurring}]
		ev.DisplayDate = render(f, ev.StartAt)
		ev.DisplayTime = ""
		out = append(out, ev)
	}
	return out
}

// weekdayName is the capitalized weekday, e.g. "Miércoles".
func (f *Formatter) weekdayName(t time.Time) string {
	return f.names.weekdays[int(t.Weekday())]
}

// fullDate is the capitalized weekday with month and day, without a
// year, e.g. "Jueves, 4 de julio" or "Thursday, July 4".
func (f *Formatter) fullDate(t time.Time) string {
	month := f.names.months[int(t.Month())-1]
	if f.names.dayFirst {
		return fmt.Sprintf("%s, %d %s %s", f.weekdayName(t), t.Day(), f.names.connector, month)
	}
	return fmt.Sprintf("%s, %s %d", f.weekdayName(t), month, t.Day())
}
