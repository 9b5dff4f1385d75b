package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smokybot/orderagent/locale"
)

var sampleRecord = &Record{
	ArrivalTime:        "tomorrow at 20:00",
	DurationHours:      3,
	HookahMastersCount: 2,
	HookahsCount:       5,
	Location:           "Main St 1",
	PhoneNumber:        "+1234567890",
}

func TestUserSummaryContainsAllFields(t *testing.T) {
	for _, lang := range locale.Supported() {
		summary := UserSummary(lang, sampleRecord, "@client")
		for _, want := range []string{"tomorrow at 20:00", "3", "2", "5", "Main St 1", "+1234567890", "@client"} {
			assert.Contains(t, summary, want, "lang %s", lang)
		}
		assert.Contains(t, summary, locale.Message(lang, locale.KeySummaryTitle))
	}
}

func TestOperatorSummaryFixedFieldOrder(t *testing.T) {
	summary := OperatorSummary(sampleRecord, "@client", "abc12345")
	assert.Contains(t, summary, "#abc12345")

	// when, duration, hookahs, masters, location, phone, client
	order := []string{"tomorrow at 20:00", "3 ч.", "5 шт.", "2 чел.", "Main St 1", "+1234567890", "@client"}
	pos := -1
	for _, want := range order {
		idx := strings.Index(summary, want)
		assert.GreaterOrEqual(t, idx, 0, "missing %q", want)
		assert.Greater(t, idx, pos, "%q out of order", want)
		pos = idx
	}
}
