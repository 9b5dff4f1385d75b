package order

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullArguments = `{
	"arrival_time": "tomorrow at 20:00",
	"duration_hours": 3,
	"hookah_masters_count": 2,
	"hookahs_count": 5,
	"location": "Main St 1",
	"phone_number": "+1234567890"
}`

func TestDecodeFullPayload(t *testing.T) {
	rec, err := Decode(fullArguments)
	require.NoError(t, err)
	assert.Equal(t, "tomorrow at 20:00", rec.ArrivalTime)
	assert.Equal(t, 3.0, rec.DurationHours)
	assert.Equal(t, 2, rec.HookahMastersCount)
	assert.Equal(t, 5, rec.HookahsCount)
	assert.Equal(t, "Main St 1", rec.Location)
	assert.Equal(t, "+1234567890", rec.PhoneNumber)
}

func TestDecodeZeroCountsAreValid(t *testing.T) {
	rec, err := Decode(`{
		"arrival_time": "tonight",
		"duration_hours": 1,
		"hookah_masters_count": 0,
		"hookahs_count": 0,
		"location": "somewhere",
		"phone_number": "+0"
	}`)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.HookahMastersCount)
	assert.Equal(t, 0, rec.HookahsCount)
}

func TestDecodeRejectsEachMissingField(t *testing.T) {
	fields := []string{
		"arrival_time", "duration_hours", "hookah_masters_count",
		"hookahs_count", "location", "phone_number",
	}
	for _, omit := range fields {
		t.Run(omit, func(t *testing.T) {
			args := "{"
			first := true
			for _, f := range fields {
				if f == omit {
					continue
				}
				if !first {
					args += ","
				}
				first = false
				switch f {
				case "duration_hours", "hookah_masters_count", "hookahs_count":
					args += fmt.Sprintf("%q: 2", f)
				default:
					args += fmt.Sprintf("%q: \"x\"", f)
				}
			}
			args += "}"
			rec, err := Decode(args)
			require.Error(t, err)
			assert.Nil(t, rec)
			assert.Contains(t, err.Error(), omit)
		})
	}
}

func TestDecodeRejectsEmptyStrings(t *testing.T) {
	rec, err := Decode(`{
		"arrival_time": "",
		"duration_hours": 2,
		"hookah_masters_count": 1,
		"hookahs_count": 1,
		"location": "addr",
		"phone_number": "+1"
	}`)
	require.Error(t, err)
	assert.Nil(t, rec)
}

func TestDecodeRejectsWrongTypes(t *testing.T) {
	_, err := Decode(`{
		"arrival_time": "tonight",
		"duration_hours": "three",
		"hookah_masters_count": 1,
		"hookahs_count": 1,
		"location": "addr",
		"phone_number": "+1"
	}`)
	assert.Error(t, err)
}

func TestDecodeRejectsNegativeCounts(t *testing.T) {
	_, err := Decode(`{
		"arrival_time": "tonight",
		"duration_hours": 2,
		"hookah_masters_count": -1,
		"hookahs_count": 1,
		"location": "addr",
		"phone_number": "+1"
	}`)
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode(`{"arrival_time": `)
	assert.Error(t, err)
}

func TestToolInfoDeclaresAllFieldsRequired(t *testing.T) {
	info, err := ToolInfo()
	require.NoError(t, err)
	assert.Equal(t, ToolName, info.Name)
}
