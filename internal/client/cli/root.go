package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.source.Get() != "" {
		return "(linked)"
	}
	return "(anonymous)"
}

// Root runs the command loop until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Arcane Tracker CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tracker %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: history, upload <replay-file>, erase, link, claim, profile, unlink, exit")
		case "history":
			a.historyCmd(ctx)
		case "upload":
			a.uploadCmd(ctx, args)
		case "erase":
			a.eraseCmd(ctx)
		case "link":
			a.linkCmd(ctx)
		case "claim":
			a.claimCmd(ctx)
		case "profile":
			a.profileCmd(ctx)
		case "unlink":
			a.unlinkCmd(ctx)
		case "exit":
			return
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}
	}
}
