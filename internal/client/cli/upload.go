package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/imalento/Arcane-Tracker/internal/client/models"
)

// uploadCmd records a finished game from a serialized replay file, prompting
// for the match facts the log parser would normally supply.
func (a *App) uploadCmd(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: upload <replay-file>")
		return
	}

	payload, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading replay file: %v\n", err)
		return
	}

	deck, err := getSimpleText(a.reader, "Deck name", os.Stdout)
	if err != nil {
		return
	}
	win, err := getBool(a.reader, "Victory?", os.Stdout)
	if err != nil {
		return
	}
	coin, err := getBool(a.reader, "Had the coin?", os.Stdout)
	if err != nil {
		return
	}
	hero, err := getInt(a.reader, "Player class index (0-8)", 0, os.Stdout)
	if err != nil {
		fmt.Printf("invalid number: %v\n", err)
		return
	}
	opponent, err := getInt(a.reader, "Opponent class index (0-8)", 0, os.Stdout)
	if err != nil {
		fmt.Printf("invalid number: %v\n", err)
		return
	}
	gameType, err := getInt(a.reader, "Game type (7=ranked, 8=casual, 5=arena)", int(models.GameTypeRanked), os.Stdout)
	if err != nil {
		fmt.Printf("invalid number: %v\n", err)
		return
	}
	rank, err := getInt(a.reader, "Rank (0 if unknown)", 0, os.Stdout)
	if err != nil {
		fmt.Printf("invalid number: %v\n", err)
		return
	}
	friendly, err := getSimpleText(a.reader, "Friendly player id (1 or 2)", os.Stdout)
	if err != nil {
		return
	}
	if friendly != "1" && friendly != "2" {
		friendly = "1"
	}

	game := &models.Game{
		HasCoin:       coin,
		Victory:       win,
		PlayerClass:   hero,
		OpponentClass: opponent,
		DeckName:      deck,
		GameType:      models.GameType(gameType),
		Rank:          rank,
	}

	summary, err := a.uploader.Record(ctx, models.ISO8601(time.Now()), friendly, game, payload)
	if err != nil {
		fmt.Printf("error recording game: %v\n", err)
		return
	}

	if a.source.Get() == "" {
		fmt.Printf("game %s recorded locally (no token set, nothing uploaded)\n", summary.ID)
		return
	}
	fmt.Printf("game %s recorded, upload started\n", summary.ID)
}
