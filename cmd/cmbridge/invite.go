package main

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/spachava753/cmbridge/invite"
	"github.com/spf13/cobra"
)

// inviteOptions are the flags of the invite subcommand.
type inviteOptions struct {
	Limit  int
	DryRun bool
	invite.Template
}

// registerInvite registers the invite subcommand
func registerInvite(rootCmd *cobra.Command, globalOptions *Options) {
	var inviteOpts inviteOptions
	subCmd := &cobra.Command{
		Use:   "invite",
		Short: "Emails an invitation to every recommended contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return inviteMain(ctx, globalOptions, &inviteOpts, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(subCmd)
	flags := subCmd.Flags()

	flags.IntVar(
		&inviteOpts.Limit,
		"limit",
		0,
		"maximum number of recommendations to fetch (zero uses the configured default)",
	)

	flags.BoolVar(
		&inviteOpts.DryRun,
		"dry-run",
		false,
		"compose the invitations without sending them",
	)

	flags.StringVar(
		&inviteOpts.Inviter,
		"inviter",
		"",
		"name shown as the sender of the invitation",
	)

	flags.StringVar(
		&inviteOpts.AppName,
		"app-name",
		"",
		"name of the app the contact is invited to",
	)

	flags.StringVar(
		&inviteOpts.Link,
		"link",
		"",
		"URL where the invitee can join",
	)
}

func inviteMain(ctx context.Context, opts *Options, inviteOpts *inviteOptions, w io.Writer) error {
	sender, err := invite.NewSender(opts.cfg.SMTP, log.Log)
	if err != nil && !inviteOpts.DryRun {
		return err
	}
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := opts.initialize(ctx, sess.facade); err != nil {
		return err
	}
	recs, err := sess.facade.GetInviteRecommendations(ctx, inviteOpts.Limit)
	if err != nil {
		return err
	}
	if sender == nil {
		sender = &invite.Sender{}
	}
	results, err := sender.SendAll(ctx, recs, inviteOpts.Template, inviteOpts.DryRun)
	if err != nil {
		return err
	}
	var failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(w, "%s\tskipped\t%v\n", r.ContactID, r.Err)
		case inviteOpts.DryRun:
			fmt.Fprintf(w, "%s\twould send\t%s\n", r.ContactID, r.To)
		default:
			fmt.Fprintf(w, "%s\tsent\t%s\t%s\n", r.ContactID, r.To, r.MessageID)
		}
	}
	log.Infof("%d invitations, %d skipped", len(results), failed)
	return nil
}
