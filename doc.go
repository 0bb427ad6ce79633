// Package cmbridge is the data-mapping layer between a contacts and
// social-graph SDK and its JavaScript callers.
//
// This root package is documentation-only. Import specific subpackages:
//   - github.com/spachava753/cmbridge/native
//     The native boundary: record types, service interfaces, registration.
//   - github.com/spachava753/cmbridge/contacts
//     Contact normalization, simplified contacts, search field types.
//   - github.com/spachava753/cmbridge/social
//     Canonical contacts, follows, events and paginated lists.
//   - github.com/spachava753/cmbridge/recommend
//     Recommendation normalization.
//   - github.com/spachava753/cmbridge/service
//     The facade: validation, one boundary call, normalization, dispatch.
//   - github.com/spachava753/cmbridge/jsbridge
//     The facade as an embedded JavaScript module.
//   - github.com/spachava753/cmbridge/wsbridge
//     The facade over a websocket.
//   - github.com/spachava753/cmbridge/replay
//     A sqlite fixture boundary for offline runs.
//   - github.com/spachava753/cmbridge/invite
//     Invitation emails for invite recommendations.
//
// Discovery workflow:
//   - Run: go doc github.com/spachava753/cmbridge
//   - Then drill in with:
//     go doc github.com/spachava753/cmbridge/service
//     go doc github.com/spachava753/cmbridge/native
package cmbridge
