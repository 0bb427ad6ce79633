package social

import (
	"strings"
	"time"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/optional"
)

// CreateEventRequest is the caller's request to create an event. Zero
// StartTime and EndTime mean undated.
type CreateEventRequest struct {
	EventType   string             `json:"eventType"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	StartTime   contacts.Timestamp `json:"startTime"`
	EndTime     contacts.Timestamp `json:"endTime"`
	Metadata    map[string]string  `json:"metadata"`
	IsPublic    bool               `json:"isPublic"`
}

// UpdateEventRequest is a partial event update. Each field is independently
// absent, null or set; see optional.Patch.
type UpdateEventRequest struct {
	EventType   optional.Patch[string]             `json:"eventType,omitzero"`
	Title       optional.Patch[string]             `json:"title,omitzero"`
	Description optional.Patch[string]             `json:"description,omitzero"`
	Location    optional.Patch[string]             `json:"location,omitzero"`
	StartTime   optional.Patch[contacts.Timestamp] `json:"startTime,omitzero"`
	EndTime     optional.Patch[contacts.Timestamp] `json:"endTime,omitzero"`
	Metadata    optional.Patch[map[string]string]  `json:"metadata,omitzero"`
	IsPublic    optional.Patch[bool]               `json:"isPublic,omitzero"`
}

// BuildCreateEventRequest validates req and converts it for the boundary.
// Title is required and EndTime may not precede StartTime.
func BuildCreateEventRequest(req CreateEventRequest) (native.CreateEventRequest, error) {
	var problems []cmerr.FieldError
	if strings.TrimSpace(req.Title) == "" {
		problems = append(problems, cmerr.FieldError{Field: "title", Msg: "is required"})
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && req.EndTime < req.StartTime {
		problems = append(problems, cmerr.FieldError{Field: "endTime", Msg: "must not precede startTime"})
	}
	if len(problems) > 0 {
		return native.CreateEventRequest{}, cmerr.Validation(problems...)
	}
	out := native.CreateEventRequest{
		EventType:   req.EventType,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime.Time(),
		EndTime:     req.EndTime.Time(),
		IsPublic:    req.IsPublic,
	}
	if len(req.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(req.Metadata))
		for k, v := range req.Metadata {
			out.Metadata[k] = v
		}
	}
	return out, nil
}

// BuildUpdateEventRequest converts a partial update for the boundary.
//
// Absent fields stay absent so the boundary leaves them unchanged. Null
// clears a field; title and isPublic cannot be cleared. A set timestamp of
// 0 is the "no timestamp" sentinel and clears the field. An update with no
// present field is rejected.
func BuildUpdateEventRequest(req UpdateEventRequest) (native.UpdateEventRequest, error) {
	var problems []cmerr.FieldError
	if req.Title.IsNull() {
		problems = append(problems, cmerr.FieldError{Field: "title", Msg: "cannot be cleared"})
	}
	if title, ok := req.Title.Get(); ok && strings.TrimSpace(title) == "" {
		problems = append(problems, cmerr.FieldError{Field: "title", Msg: "must not be empty"})
	}
	if req.IsPublic.IsNull() {
		problems = append(problems, cmerr.FieldError{Field: "isPublic", Msg: "cannot be cleared"})
	}
	start, startSet := req.StartTime.Get()
	end, endSet := req.EndTime.Get()
	if startSet && endSet && !start.IsZero() && !end.IsZero() && end < start {
		problems = append(problems, cmerr.FieldError{Field: "endTime", Msg: "must not precede startTime"})
	}
	if req.empty() {
		problems = append(problems, cmerr.FieldError{Field: "", Msg: "update has no fields"})
	}
	if len(problems) > 0 {
		return native.UpdateEventRequest{}, cmerr.Validation(problems...)
	}

	return native.UpdateEventRequest{
		EventType:   req.EventType,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   instantPatch(req.StartTime),
		EndTime:     instantPatch(req.EndTime),
		Metadata:    optional.Map(req.Metadata, copyMetadata),
		IsPublic:    req.IsPublic,
	}, nil
}

func (req UpdateEventRequest) empty() bool {
	return req.EventType.IsAbsent() &&
		req.Title.IsAbsent() &&
		req.Description.IsAbsent() &&
		req.Location.IsAbsent() &&
		req.StartTime.IsAbsent() &&
		req.EndTime.IsAbsent() &&
		req.Metadata.IsAbsent() &&
		req.IsPublic.IsAbsent()
}

func instantPatch(p optional.Patch[contacts.Timestamp]) optional.Patch[time.Time] {
	if ts, ok := p.Get(); ok && ts.IsZero() {
		return optional.Null[time.Time]()
	}
	return optional.Map(p, contacts.Timestamp.Time)
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
