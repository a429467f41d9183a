package cli

import (
	"context"
	"fmt"

	"github.com/imalento/Arcane-Tracker/internal/client/services"
)

// waitLce consumes a result stream and returns its terminal element.
func waitLce[T any](ch <-chan services.Lce[T]) services.Lce[T] {
	var last services.Lce[T]
	for e := range ch {
		last = e
	}
	return last
}

func (a *App) linkCmd(ctx context.Context) {
	if a.source.Get() != "" {
		fmt.Println("a token is already set; unlink first to mint a new one")
		return
	}

	fmt.Println("requesting token...")
	res := waitLce(a.account.CreateToken(ctx))
	if res.State == services.LceError {
		fmt.Printf("error creating token: %v\n", res.Err)
		return
	}
	fmt.Println("token created and stored; use 'claim' to attach an account")
}

func (a *App) claimCmd(ctx context.Context) {
	res := waitLce(a.account.ClaimURL(ctx))
	if res.State == services.LceError {
		fmt.Printf("error requesting claim url: %v\n", res.Err)
		return
	}
	fmt.Printf("open this link to claim your replays: %s\n", res.Value)
}

func (a *App) profileCmd(ctx context.Context) {
	res := waitLce(a.account.Profile(ctx))
	if res.State == services.LceError {
		fmt.Printf("error fetching profile: %v\n", res.Err)
		return
	}
	info := res.Value
	fmt.Printf("token: %s\n", info.Key)
	if info.User != nil {
		fmt.Printf("linked account: %s (%s)\n", info.User.Username, info.User.Battletag)
	} else {
		fmt.Println("no account linked yet; use 'claim'")
	}
}

func (a *App) unlinkCmd(ctx context.Context) {
	if err := a.account.Unlink(ctx); err != nil {
		fmt.Printf("error unlinking: %v\n", err)
		return
	}
	fmt.Println("token cleared; new games stay local")
}
