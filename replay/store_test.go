package replay

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/service"
)

const fixtures = `[
	{"op": "getContactsCount", "result": 2},
	{"op": "fetchContactWithId", "args": ["c-1"], "result": {"identifier": "c-1", "givenName": "Ana"}},
	{"op": "fetchContactWithId", "result": null},
	{"op": "searchContacts", "result": {"contacts": [{"identifier": "c-1", "givenName": "Ana"}], "totalCount": 1}},
	{"op": "followUser", "args": ["u-9"], "error": "user is blocked"},
	{"op": "getFeed", "args": [0, 10], "result": {"items": [{"identifier": "e-1", "title": "Picnic", "startTime": "2026-05-01T12:00:00Z"}], "total": 1, "skip": 0, "limit": 10}}
]`

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fixtures.db"))
	be.Err(t, err, nil)
	t.Cleanup(func() { s.Close() })
	n, err := s.Import(context.Background(), strings.NewReader(fixtures))
	be.Err(t, err, nil)
	be.Equal(t, n, 6)
	return s
}

func TestReplayThroughFacade(t *testing.T) {
	s := openStore(t)
	f := service.New(service.WithBoundary(s.Boundary()))
	ctx := context.Background()

	n, err := f.GetContactsCount(ctx)
	be.Err(t, err, nil)
	be.Equal(t, n, 2)

	c, err := f.FetchContactWithID(ctx, "c-1")
	be.Err(t, err, nil)
	be.Equal(t, c.GivenName, "Ana")

	_, err = f.FetchContactWithID(ctx, "c-2")
	be.Err(t, err, cmerr.ErrNotFound)

	res, err := f.SearchContacts(ctx, "ana", 1, 0, 0)
	be.Err(t, err, nil)
	be.Equal(t, res.TotalCount, 1)

	_, err = f.FollowUser(ctx, "u-9")
	be.Err(t, err, cmerr.ErrBoundary)
	be.Err(t, err, "user is blocked")

	feed, err := f.GetFeed(ctx, 0, 0)
	be.Err(t, err, nil)
	be.Equal(t, len(feed.Items), 1)
	be.Equal(t, feed.Items[0].StartTime.Time().Month().String(), "May")

	_, err = f.GetUpcomingEvents(ctx, 0, 0)
	be.Err(t, err, ErrNoFixture)

	calls, err := s.Calls(ctx)
	be.Err(t, err, nil)
	be.Equal(t, len(calls), 7)
	be.Equal(t, calls[1].Op, service.OpFetchContactWithID)
	be.Equal(t, calls[1].Args, `["c-1"]`)
	be.Equal(t, calls[3].Args, `["ana",1,0,20]`)
}

func TestPutReplaces(t *testing.T) {
	s, err := Open(":memory:")
	be.Err(t, err, nil)
	defer s.Close()
	ctx := context.Background()
	b := s.Boundary()

	be.Err(t, s.Put(ctx, Fixture{Op: service.OpCheckHealth, Result: json.RawMessage(`true`)}), nil)
	ok, err := b.Contacts.CheckHealth(ctx)
	be.Err(t, err, nil)
	be.True(t, ok)

	be.Err(t, s.Put(ctx, Fixture{Op: service.OpCheckHealth, Error: "degraded"}), nil)
	_, err = b.Contacts.CheckHealth(ctx)
	be.Err(t, err, "degraded")

	be.True(t, s.Put(ctx, Fixture{}) != nil)
	be.True(t, s.Put(ctx, Fixture{Op: "x", Args: json.RawMessage(`{}`)}) != nil)
	be.True(t, s.Put(ctx, Fixture{Op: "x", Result: json.RawMessage(`{`)}) != nil)
}

func TestImportIsAtomic(t *testing.T) {
	s, err := Open(":memory:")
	be.Err(t, err, nil)
	defer s.Close()

	_, err = s.Import(context.Background(), strings.NewReader(`[{"op":"checkHealth","result":true},{"op":""}]`))
	be.True(t, err != nil)

	_, err = s.Boundary().Contacts.CheckHealth(context.Background())
	be.True(t, errors.Is(err, ErrNoFixture))
}
