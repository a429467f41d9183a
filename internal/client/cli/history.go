package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) historyCmd(ctx context.Context) {
	list, err := a.uploader.History(ctx)
	if err != nil {
		fmt.Printf("error reading history: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("no games recorded")
		return
	}
	for i, g := range list {
		outcome := "loss"
		if g.Win {
			outcome = "win"
		}
		link := g.RemoteURL
		if link == "" {
			link = "-"
		}
		fmt.Printf("%3d  %s  %-4s  %-20s  %s\n", i, g.Date, outcome, g.DeckName, link)
	}
}

func (a *App) eraseCmd(ctx context.Context) {
	ok, err := getBool(a.reader, "Erase the whole match history?", os.Stdout)
	if err != nil || !ok {
		return
	}
	if err := a.uploader.EraseHistory(ctx); err != nil {
		fmt.Printf("error erasing history: %v\n", err)
		return
	}
	fmt.Println("history erased")
}
