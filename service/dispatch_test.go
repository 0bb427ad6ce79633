package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/native/mocks"
	"github.com/spachava753/cmbridge/social"
)

func TestOpsHaveHandlers(t *testing.T) {
	for _, op := range Ops() {
		_, ok := handlers[op]
		be.True(t, ok)
		code, ok := ErrorCode(op)
		be.True(t, ok)
		be.True(t, code != "")
	}
	be.Equal(t, len(handlers), len(operations))
}

func TestDispatchPositionalArgs(t *testing.T) {
	var gotQuery string
	var gotOffset, gotLimit int
	b := native.Boundary{
		Search: &mocks.SearchService{
			MockSearchContacts: func(ctx context.Context, query string, fieldType uint32, offset, limit int) (native.SearchResult, error) {
				gotQuery, gotOffset, gotLimit = query, offset, limit
				return native.SearchResult{Contacts: []native.Contact{{Identifier: "a"}}, TotalCount: 7}, nil
			},
		},
	}
	f, _ := newFacade(t, b)

	out, err := f.Dispatch(context.Background(), OpSearchContacts, json.RawMessage(`["ana", 3, 4, null]`))
	be.Err(t, err, nil)
	res, ok := out.(SearchResult)
	be.True(t, ok)
	be.Equal(t, res.TotalCount, 7)
	be.Equal(t, gotQuery, "ana")
	be.Equal(t, gotOffset, 4)
	be.Equal(t, gotLimit, 20)
}

func TestDispatchArgumentErrors(t *testing.T) {
	f, _ := newFacade(t, native.Boundary{Social: &mocks.SocialService{}})

	_, err := f.Dispatch(context.Background(), OpGetFeed, json.RawMessage(`["zero", 1.5]`))
	be.Err(t, err, cmerr.ErrValidation)
	var e *cmerr.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Op, OpGetFeed)
	be.Equal(t, len(e.Fields), 2)
	be.Equal(t, e.Fields[0].Field, "skip")
	be.Equal(t, e.Fields[1].Field, "limit")

	_, err = f.Dispatch(context.Background(), OpGetFeed, json.RawMessage(`{"skip":0}`))
	be.Err(t, err, cmerr.ErrValidation)

	_, err = f.Dispatch(context.Background(), "dropTables", nil)
	be.Err(t, err, cmerr.ErrValidation)
}

func TestDispatchNotFoundIsNull(t *testing.T) {
	b := native.Boundary{Social: &mocks.SocialService{
		MockGetEvent: func(ctx context.Context, eventID string) (*native.SocialEvent, error) { return nil, nil },
	}}
	f, _ := newFacade(t, b)
	out, err := f.Dispatch(context.Background(), OpGetEvent, json.RawMessage(`["e-404"]`))
	be.Err(t, err, nil)
	be.Equal(t, out, nil)
}

func TestDispatchUpdateEventPatch(t *testing.T) {
	var got native.UpdateEventRequest
	b := native.Boundary{Social: &mocks.SocialService{
		MockUpdateEvent: func(ctx context.Context, eventID string, req native.UpdateEventRequest) (native.EventActionResponse, error) {
			got = req
			return native.EventActionResponse{Success: true, Updated: true}, nil
		},
	}}
	f, _ := newFacade(t, b)

	out, err := f.Dispatch(context.Background(), OpUpdateEvent, json.RawMessage(`["e-1", {"title":"New","location":null,"startTime":0}]`))
	be.Err(t, err, nil)
	be.True(t, out.(social.EventActionResponse).Updated)
	be.True(t, got.Title.IsSet())
	be.True(t, got.Location.IsNull())
	be.True(t, got.StartTime.IsNull())
	be.True(t, got.Description.IsAbsent())

	body, err := json.Marshal(got)
	be.Err(t, err, nil)
	be.Equal(t, string(body), `{"title":"New","location":null,"startTime":null}`)
}

func TestDispatchInitializeOmittedToken(t *testing.T) {
	var gotToken *string
	var gotUser native.UserInfo
	b := native.Boundary{Contacts: &mocks.ContactService{
		MockInitialize: func(ctx context.Context, apiKey string, user native.UserInfo, token *string, opts native.Options) error {
			gotToken, gotUser = token, user
			return nil
		},
	}}
	f, _ := newFacade(t, b)
	out, err := f.Dispatch(context.Background(), OpInitialize, json.RawMessage(`["key", {"userId":"u-1","fullName":"Ana"}]`))
	be.Err(t, err, nil)
	be.Equal(t, out, nil)
	be.True(t, gotToken == nil)
	be.Equal(t, gotUser.FullName, "Ana")
}
