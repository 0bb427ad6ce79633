package service

import "sort"

const (
	groupContacts        = "contacts"
	groupSearch          = "search"
	groupAuthorization   = "authorization"
	groupSocial          = "social"
	groupRecommendations = "recommendations"
)

// Operation names as exposed to script and socket callers.
const (
	OpInitialize                 = "initialize"
	OpIsInitialized              = "isInitialized"
	OpCurrentState               = "currentState"
	OpReset                      = "reset"
	OpFetchContacts              = "fetchContacts"
	OpFetchContactsWithFieldType = "fetchContactsWithFieldType"
	OpFetchContactsWithBatch     = "fetchContactsWithBatch"
	OpFetchContactWithID         = "fetchContactWithId"
	OpGetContactsCount           = "getContactsCount"
	OpEnableBackgroundSync       = "enableBackgroundSync"
	OpScheduleBackgroundSyncTask = "scheduleBackgroundSyncTask"
	OpCheckHealth                = "checkHealth"
	OpHasContactChanged          = "hasContactChanged"
	OpGetContactsForSync         = "getContactsForSync"
	OpStartSync                  = "startSync"
	OpCancelSync                 = "cancelSync"
	OpGetSimplifiedContacts      = "getSimplifiedContacts"

	OpSearchContacts      = "searchContacts"
	OpQuickSearch         = "quickSearch"
	OpSearchContactsCount = "searchContactsCount"

	OpRequestContactsAccess   = "requestContactsAccess"
	OpCheckAccessStatus       = "checkAccessStatus"
	OpHasContactsReadAccess   = "hasContactsReadAccess"
	OpShouldShowSettingsAlert = "shouldShowSettingsAlert"
	OpShowSettingsAlertView   = "showSettingsAlertView"

	OpFollowUser        = "followUser"
	OpUnfollowUser      = "unfollowUser"
	OpIsFollowingUser   = "isFollowingUser"
	OpGetFollowers      = "getFollowers"
	OpGetFollowing      = "getFollowing"
	OpGetMutualFollows  = "getMutualFollows"
	OpCreateEvent       = "createEvent"
	OpGetEvent          = "getEvent"
	OpUpdateEvent       = "updateEvent"
	OpDeleteEvent       = "deleteEvent"
	OpGetUserEvents     = "getUserEvents"
	OpGetFeed           = "getFeed"
	OpGetUpcomingEvents = "getUpcomingEvents"
	OpGetForYouFeed     = "getForYouFeed"

	OpGetInviteRecommendations = "getInviteRecommendations"
	OpGetContactsUsingApp      = "getContactsUsingApp"
	OpGetUsersYouMightKnow     = "getUsersYouMightKnow"
)

var operations = map[string]opInfo{
	OpInitialize:                 {"init_error", groupContacts},
	OpIsInitialized:              {"check_init_error", groupContacts},
	OpCurrentState:               {"state_error", groupContacts},
	OpReset:                      {"reset_error", groupContacts},
	OpFetchContacts:              {"fetch_error", groupContacts},
	OpFetchContactsWithFieldType: {"fetch_field_error", groupContacts},
	OpFetchContactsWithBatch:     {"fetch_batch_error", groupContacts},
	OpFetchContactWithID:         {"fetch_contact_error", groupContacts},
	OpGetContactsCount:           {"count_error", groupContacts},
	OpEnableBackgroundSync:       {"background_sync_error", groupContacts},
	OpScheduleBackgroundSyncTask: {"schedule_sync_error", groupContacts},
	OpCheckHealth:                {"health_error", groupContacts},
	OpHasContactChanged:          {"contact_changed_error", groupContacts},
	OpGetContactsForSync:         {"sync_contacts_error", groupContacts},
	OpStartSync:                  {"sync_error", groupContacts},
	OpCancelSync:                 {"cancel_sync_error", groupContacts},
	OpGetSimplifiedContacts:      {"fetch_error", groupContacts},

	OpSearchContacts:      {"search_error", groupSearch},
	OpQuickSearch:         {"quick_search_error", groupSearch},
	OpSearchContactsCount: {"count_error", groupSearch},

	OpRequestContactsAccess:   {"permission_error", groupAuthorization},
	OpCheckAccessStatus:       {"access_status_error", groupAuthorization},
	OpHasContactsReadAccess:   {"access_status_error", groupAuthorization},
	OpShouldShowSettingsAlert: {"settings_alert_error", groupAuthorization},
	OpShowSettingsAlertView:   {"settings_alert_error", groupAuthorization},

	OpFollowUser:        {"follow_error", groupSocial},
	OpUnfollowUser:      {"unfollow_error", groupSocial},
	OpIsFollowingUser:   {"is_following_error", groupSocial},
	OpGetFollowers:      {"get_followers_error", groupSocial},
	OpGetFollowing:      {"get_following_error", groupSocial},
	OpGetMutualFollows:  {"get_mutual_follows_error", groupSocial},
	OpCreateEvent:       {"create_event_error", groupSocial},
	OpGetEvent:          {"get_event_error", groupSocial},
	OpUpdateEvent:       {"update_event_error", groupSocial},
	OpDeleteEvent:       {"delete_event_error", groupSocial},
	OpGetUserEvents:     {"get_user_events_error", groupSocial},
	OpGetFeed:           {"get_feed_error", groupSocial},
	OpGetUpcomingEvents: {"get_upcoming_events_error", groupSocial},
	OpGetForYouFeed:     {"get_for_you_feed_error", groupSocial},

	OpGetInviteRecommendations: {"invite_recommendations_error", groupRecommendations},
	OpGetContactsUsingApp:      {"contacts_using_app_error", groupRecommendations},
	OpGetUsersYouMightKnow:     {"users_you_might_know_error", groupRecommendations},
}

// ErrorCode returns the boundary error code of op.
func ErrorCode(op string) (string, bool) {
	info, ok := operations[op]
	return info.code, ok
}

// Ops returns every operation name, sorted.
func Ops() []string {
	out := make([]string, 0, len(operations))
	for op := range operations {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}
