package native

import (
	"testing"

	"github.com/nalgeon/be"
)

type fakeSearch struct{ SearchService }

func TestRegistry(t *testing.T) {
	Unregister()
	_, ok := Lookup()
	be.True(t, !ok)

	Register(Boundary{Search: fakeSearch{}})
	defer Unregister()

	b, ok := Lookup()
	be.True(t, ok)
	be.Equal(t, b.Missing(), []string{"contacts", "authorization", "social", "recommendations"})
}
