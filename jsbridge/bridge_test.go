package jsbridge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/nalgeon/be"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/native/mocks"
	"github.com/spachava753/cmbridge/service"
)

func newBridge(t *testing.T, opts ...service.Option) (*Bridge, *memory.Handler) {
	t.Helper()
	handler := memory.New()
	logger := &log.Logger{Handler: handler, Level: log.DebugLevel}
	return New(service.New(opts...), logger), handler
}

// scriptLines returns the messages the script printed with console.log.
func scriptLines(h *memory.Handler) []string {
	var out []string
	for _, e := range h.Entries {
		if e.Fields["source"] == "script" {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestScriptResolvesFacadeResults(t *testing.T) {
	b := native.Boundary{
		Contacts: &mocks.ContactService{
			MockGetContactsCount: func(ctx context.Context) (int, error) { return 3, nil },
			MockFetchContactWithID: func(ctx context.Context, id string) (*native.Contact, error) {
				if id == "c-1" {
					return &native.Contact{Identifier: "c-1", GivenName: "Ana"}, nil
				}
				return nil, nil
			},
		},
	}
	bridge, handler := newBridge(t, service.WithBoundary(b))

	err := bridge.RunScript(context.Background(), "count.js", `
		const cm = require("contactsmanager");
		cm.getContactsCount().then((n) => console.log("count " + n));
		cm.fetchContactWithId("c-1").then((c) => console.log("name " + c.givenName + " " + c.phoneNumbers.length));
		cm.fetchContactWithId("c-2").then((c) => console.log("missing " + c));
	`)
	be.Err(t, err, nil)
	lines := scriptLines(handler)
	be.Equal(t, len(lines), 3)
	be.True(t, contains(lines, "count 3"))
	be.True(t, contains(lines, "name Ana 0"))
	be.True(t, contains(lines, "missing null"))
}

func TestScriptRejections(t *testing.T) {
	b := native.Boundary{
		Social: &mocks.SocialService{
			MockFollowUser: func(ctx context.Context, userID string) (native.FollowActionResponse, error) {
				return native.FollowActionResponse{}, errors.New("offline")
			},
		},
	}
	bridge, handler := newBridge(t, service.WithBoundary(b))

	err := bridge.RunScript(context.Background(), "follow.js", `
		const cm = require("contactsmanager");
		cm.followUser("u-2").catch((e) => console.log(e.kind + " " + e.code + " " + (e instanceof Error)));
		cm.followUser("").catch((e) => console.log(e.kind + " " + e.fields[0].field));
	`)
	be.Err(t, err, nil)
	lines := scriptLines(handler)
	be.True(t, contains(lines, "boundary follow_error true"))
	be.True(t, contains(lines, "validation userId"))
}

func TestScriptLinkingError(t *testing.T) {
	native.Unregister()
	bridge, handler := newBridge(t)

	err := bridge.RunScript(context.Background(), "link.js", `
		const cm = require("contactsmanager");
		try {
			cm.getContactsCount();
		} catch (e) {
			console.log(e.name + " " + e.kind);
		}
	`)
	be.Err(t, err, nil)
	be.Equal(t, scriptLines(handler), []string{"LinkingError linking"})
}

func TestScriptSyntaxError(t *testing.T) {
	bridge, _ := newBridge(t)
	err := bridge.RunScript(context.Background(), "bad.js", `this is not javascript`)
	be.True(t, err != nil)
}

func TestScriptCancelled(t *testing.T) {
	bridge, _ := newBridge(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := bridge.RunScript(ctx, "spin.js", `for (;;) {}`)
	be.Err(t, err, context.DeadlineExceeded)
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}
