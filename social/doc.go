// Package social converts the follow graph, canonical contacts and event
// feed between the native SDK form and the wire form.
//
// Pagination is uniform: WrapPage converts items and echoes the native
// total, skip and limit. The total is never recomputed here.
//
// Outbound event requests go through BuildCreateEventRequest and
// BuildUpdateEventRequest. The update builder keeps each field's presence:
// a field missing from the caller's object stays absent in the native
// request and is omitted when the request is serialized, so the SDK leaves
// it unchanged.
//
//	req, err := social.BuildUpdateEventRequest(social.UpdateEventRequest{
//		Title: optional.Set("New"),
//	})
package social
