package order

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Record is the structured extraction target: the six facts the assistant
// collects before an order can be confirmed.
type Record struct {
	ArrivalTime        string  `json:"arrival_time" jsonschema:"required,description=Date and time of arrival, e.g. 'tomorrow at 20:00'"`
	DurationHours      float64 `json:"duration_hours" jsonschema:"required,description=Duration of the event in hours, e.g. 4"`
	HookahMastersCount int     `json:"hookah_masters_count" jsonschema:"required,description=Number of hookah masters needed"`
	HookahsCount       int     `json:"hookahs_count" jsonschema:"required,description=Number of hookahs needed"`
	Location           string  `json:"location" jsonschema:"required,description=Full address of the event"`
	PhoneNumber        string  `json:"phone_number" jsonschema:"required,description=Contact phone number of the user"`
}

// payload mirrors Record with pointer fields so an absent key is
// distinguishable from a zero value.
type payload struct {
	ArrivalTime        *string  `json:"arrival_time"`
	DurationHours      *float64 `json:"duration_hours"`
	HookahMastersCount *int     `json:"hookah_masters_count"`
	HookahsCount       *int     `json:"hookahs_count"`
	Location           *string  `json:"location"`
	PhoneNumber        *string  `json:"phone_number"`
}

// Decode parses a tool-call argument payload into a Record. All six fields
// must be present and well typed; a partial payload is rejected so it never
// becomes a pending order.
func Decode(argumentsJSON string) (*Record, error) {
	var p payload
	if err := sonic.UnmarshalString(argumentsJSON, &p); err != nil {
		return nil, fmt.Errorf("parse order arguments: %w", err)
	}
	var missing []string
	if p.ArrivalTime == nil || *p.ArrivalTime == "" {
		missing = append(missing, "arrival_time")
	}
	if p.DurationHours == nil {
		missing = append(missing, "duration_hours")
	}
	if p.HookahMastersCount == nil {
		missing = append(missing, "hookah_masters_count")
	}
	if p.HookahsCount == nil {
		missing = append(missing, "hookahs_count")
	}
	if p.Location == nil || *p.Location == "" {
		missing = append(missing, "location")
	}
	if p.PhoneNumber == nil || *p.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete order extraction, missing %v", missing)
	}
	if *p.HookahMastersCount < 0 || *p.HookahsCount < 0 {
		return nil, fmt.Errorf("invalid order extraction: negative counts")
	}
	return &Record{
		ArrivalTime:        *p.ArrivalTime,
		DurationHours:      *p.DurationHours,
		HookahMastersCount: *p.HookahMastersCount,
		HookahsCount:       *p.HookahsCount,
		Location:           *p.Location,
		PhoneNumber:        *p.PhoneNumber,
	}, nil
}
