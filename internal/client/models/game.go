// Package models defines the client-side data model: the snapshot of a
// finished match and the locally persisted summary row.
package models

import "time"

// GameType mirrors the replay service's BnetGameType numeric enum.
type GameType int

const (
	GameTypeUnknown  GameType = 0
	GameTypeVsAI     GameType = 1
	GameTypeVsFriend GameType = 2
	GameTypeArena    GameType = 5
	GameTypeRanked   GameType = 7
	GameTypeCasual   GameType = 8
	GameTypeBrawl    GameType = 16
)

// Game is a snapshot of one completed match, built by the caller from
// in-game event data. It is the input of an upload attempt and is never
// persisted as-is.
type Game struct {
	HasCoin       bool
	Victory       bool
	PlayerClass   int
	OpponentClass int
	DeckName      string
	GameType      GameType
	Rank          int
}

// GameSummary is one row of match history. Rows are kept newest-first;
// RemoteURL stays empty until an upload slot is granted and is never cleared
// afterwards.
type GameSummary struct {
	ID           string   `json:"id"`
	Coin         bool     `json:"coin"`
	Win          bool     `json:"win"`
	Hero         int      `json:"hero"`
	OpponentHero int      `json:"opponent_hero"`
	Date         string   `json:"date"`
	DeckName     string   `json:"deck_name"`
	GameType     GameType `json:"game_type"`
	RemoteURL    string   `json:"remote_url,omitempty"`
}

// ISO8601 formats t the way summary dates are stored.
func ISO8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
