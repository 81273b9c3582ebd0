package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/cmd"
	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/domain"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
)

func main() {
	accountID := flag.String("account", "", "id of the account to display")
	instance := flag.String("instance", "", "instance the account id belongs to, the viewer instance by default")
	action := flag.String("action", "", "follow, unfollow, mute, unmute, block, unblock, toggle-follow or toggle-block")
	duration := flag.String("duration", "forever", "mute duration (5m, 30m, 1h, 6h, 1d, 3d, 1w, forever)")
	followers := flag.Bool("followers", false, "print the first page of followers")
	following := flag.Bool("following", false, "print the first page of following")
	flag.Parse()

	appContext, cancel, err := cmd.Bootstrap()
	if err != nil {
		panic(err)
	}
	defer cancel()
	log := dic.GetService[logger.Logger]()

	if err := run(appContext, options{
		accountID: *accountID,
		instance:  *instance,
		action:    *action,
		duration:  *duration,
		followers: *followers,
		following: *following,
	}); err != nil {
		log.WithError(err).Error("command failed")
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}

type options struct {
	accountID string
	instance  string
	action    string
	duration  string
	followers bool
	following bool
}

func run(ctx context.Context, opts options) error {
	if opts.accountID == "" {
		return errors.New("-account is required")
	}
	conf := dic.GetService[config.Config]()
	factory := dic.GetService[*domain.ViewFactory]()

	stdin := bufio.NewReader(os.Stdin)
	confirmer := domain.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		fmt.Printf("%s [y/N] ", prompt)
		answer, err := stdin.ReadString('\n')
		if err != nil {
			return false, errors.Wrap(err, "unable to read answer")
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	})
	notifier := domain.NotifyFunc(func(_ context.Context, message string) {
		fmt.Println(message)
	})

	view := factory.NewView(conf.Standalone, confirmer, notifier)
	defer view.Close()
	if err := view.Open(ctx, domain.AccountRef{ID: opts.accountID, Instance: strings.ToLower(opts.instance)}); err != nil {
		return err //nolint:wrapcheck
	}

	if opts.action != "" {
		action, err := domain.ParseAction(opts.action)
		if err != nil {
			return err //nolint:wrapcheck
		}
		var muteDuration mastodon.MuteDuration
		if action == domain.ActionMute {
			muteDuration, err = mastodon.ParseMuteDuration(opts.duration)
			if err != nil {
				return err //nolint:wrapcheck
			}
		}
		if err := view.Apply(ctx, action, muteDuration); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err := printJSON(view.Snapshot()); err != nil {
		return err
	}
	if opts.followers {
		if err := printPage(ctx, view.Followers); err != nil {
			return err
		}
	}
	if opts.following {
		if err := printPage(ctx, view.Following); err != nil {
			return err
		}
	}
	return nil
}

func printPage(ctx context.Context, paginator func() (domain.Paginator, error)) error {
	accounts, err := paginator()
	if err != nil {
		return err //nolint:wrapcheck
	}
	page, err := accounts.Next(ctx, true)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return printJSON(page)
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(value), "unable to print")
}
