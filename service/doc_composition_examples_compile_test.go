package service_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/optional"
	"github.com/spachava753/cmbridge/service"
	"github.com/spachava753/cmbridge/social"
)

func composeInitializeAndSearchByEmail(b native.Boundary) ([]string, error) {
	ctx := context.Background()
	f := service.New(service.WithBoundary(b))

	err := f.Initialize(ctx, "api-key", native.UserInfo{UserID: "u-1"}, "", native.Options{})
	if err != nil {
		return nil, err
	}
	res, err := f.SearchContacts(ctx, "acme.com", int64(contacts.Combine(contacts.FieldEmail, contacts.FieldOrganization)), 0, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.Contacts))
	for _, c := range res.Contacts {
		ids = append(ids, c.Identifier)
	}
	return ids, nil
}

func composeRescheduleEventAndClearLocation(f *service.Facade, eventID string) error {
	ctx := context.Background()
	event, err := f.GetEvent(ctx, eventID)
	if errors.Is(err, cmerr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	start := event.StartTime.Time().Add(24 * time.Hour)
	_, err = f.UpdateEvent(ctx, eventID, social.UpdateEventRequest{
		StartTime: optional.Set(contacts.TimestampOf(start)),
		Location:  optional.Null[string](),
	})
	return err
}

func composeWalkFollowers(f *service.Facade, userID string) (int, error) {
	ctx := context.Background()
	total := 0
	for skip := 0; ; {
		page, err := f.GetFollowers(ctx, userID, skip, 50)
		if err != nil {
			return total, err
		}
		total += len(page.Items)
		if len(page.Items) < 50 {
			return total, nil
		}
		skip += len(page.Items)
	}
}

func composeDispatchFromTransport(f *service.Facade) (string, error) {
	out, err := f.Dispatch(context.Background(), service.OpGetFeed, []byte(`[0, 20]`))
	var cerr *cmerr.Error
	if errors.As(err, &cerr) {
		return "", fmt.Errorf("%s failed with %s", cerr.Op, cerr.Code)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", out), nil
}
