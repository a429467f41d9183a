package hsreplay

// Wire DTOs for the replay-service REST API. Field names follow the service's
// snake_case JSON.

// PlayerAttrs carries per-player attributes of an upload-slot request. Only
// the friendly player's rank is ever attached, and only when it is known.
type PlayerAttrs struct {
	Rank int `json:"rank"`
}

// UploadRequest asks the service for an upload slot for one replay.
type UploadRequest struct {
	MatchStart       string       `json:"match_start"`
	Build            int          `json:"build"`
	FriendlyPlayerID string       `json:"friendly_player_id"`
	GameType         int          `json:"game_type"`
	Player1          *PlayerAttrs `json:"player1,omitempty"`
	Player2          *PlayerAttrs `json:"player2,omitempty"`
}

// UploadResponse is the slot the service granted. PutURL is empty when the
// service declined to allocate object storage for this replay.
type UploadResponse struct {
	URL    string `json:"url"`
	PutURL string `json:"put_url"`
}

// TokenRequest mints a new auth token.
type TokenRequest struct {
	TestData bool `json:"test_data"`
}

// Token is a freshly minted credential.
type Token struct {
	Key string `json:"key"`
}

// Claim is a one-time link letting an external account attach itself to the
// current token.
type Claim struct {
	FullURL string `json:"full_url"`
}

// AccountInfo is the remote account a token is linked to, if any.
type AccountInfo struct {
	Username  string `json:"username"`
	Battletag string `json:"battletag"`
}

// TokenInfo is the profile of an existing token.
type TokenInfo struct {
	Key      string       `json:"key"`
	TestData bool         `json:"test_data"`
	Created  string       `json:"created"`
	User     *AccountInfo `json:"user"`
}
