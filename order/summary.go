package order

import (
	"fmt"
	"strings"

	"github.com/smokybot/orderagent/locale"
)

// UserSummary renders the localized confirmation summary shown to the user
// together with the confirm/edit choices.
func UserSummary(lang locale.Language, rec *Record, client string) string {
	label := func(key locale.Key) string { return locale.Message(lang, key) }
	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 **%s**\n\n", label(locale.KeySummaryTitle))
	fmt.Fprintf(&sb, "**%s:** %s\n", label(locale.KeySummaryWhen), rec.ArrivalTime)
	fmt.Fprintf(&sb, "**%s:** %v\n", label(locale.KeySummaryHours), rec.DurationHours)
	fmt.Fprintf(&sb, "**%s:** %d\n", label(locale.KeySummaryHookahs), rec.HookahsCount)
	fmt.Fprintf(&sb, "**%s:** %d\n", label(locale.KeySummaryMasters), rec.HookahMastersCount)
	fmt.Fprintf(&sb, "**%s:** %s\n", label(locale.KeySummaryWhere), rec.Location)
	fmt.Fprintf(&sb, "**%s:** %s\n\n", label(locale.KeySummaryPhone), rec.PhoneNumber)
	fmt.Fprintf(&sb, "**%s:** %s", label(locale.KeySummaryClient), client)
	return sb.String()
}

// OperatorSummary renders the fixed, unlocalized form forwarded to the
// operator channel on confirm. Field order is stable: when, duration,
// hookahs, masters, location, phone, client.
func OperatorSummary(rec *Record, client, reference string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📩 **Новый заказ!** (#%s)\n\n", reference)
	fmt.Fprintf(&sb, "Когда: %s\n", rec.ArrivalTime)
	fmt.Fprintf(&sb, "На сколько: %v ч.\n", rec.DurationHours)
	fmt.Fprintf(&sb, "Кальяны: %d шт.\n", rec.HookahsCount)
	fmt.Fprintf(&sb, "Мастера: %d чел.\n", rec.HookahMastersCount)
	fmt.Fprintf(&sb, "Куда: %s\n", rec.Location)
	fmt.Fprintf(&sb, "Телефон: %s\n\n", rec.PhoneNumber)
	fmt.Fprintf(&sb, "Клиент: %s", client)
	return sb.String()
}
