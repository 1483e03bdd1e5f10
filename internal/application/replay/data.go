package replay

import "github.com/younwookim/gone/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// KeyEvent is one press or release of a logical control
type KeyEvent struct {
	P    int    `json:"p"`              // Player number
	D    string `json:"d"`              // Direction name
	Down bool   `json:"down,omitempty"` // Pressed
}

// FrameInput records the intents applied before one tick. Ticks without
// input are not stored.
type FrameInput struct {
	F      int        `json:"f"` // Tick number
	Keys   []KeyEvent `json:"k,omitempty"`
	Pause  bool       `json:"pause,omitempty"`
	Resume bool       `json:"resume,omitempty"`
}

// SetupData mirrors the menu choices a match was started with
type SetupData struct {
	Difficulty string `json:"difficulty"`
	Faction    string `json:"faction"`
	Players    int    `json:"players"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Setup     SetupData    `json:"setup"`
	StartTime string       `json:"startTime"`
	Ticks     int          `json:"ticks"`
	Frames    []FrameInput `json:"frames"`
	// Start is the state a loaded match resumed from, nil for new matches
	Start *system.Snapshot `json:"start,omitempty"`
}
