package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gone/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	tick      int
}

// NewRecorder creates a recorder for a match started with setup
func NewRecorder(setup system.GameSetup) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Setup:     setupData(setup),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// NewStageRecorder creates a recorder for s. A Stage that is already past
// level 0 came from a save slot, so its state is stored as the start point.
func NewStageRecorder(s *system.Stage) *Recorder {
	r := NewRecorder(s.Setup())
	if s.Level() > 0 {
		r.data.Start = s.ExportState()
	}
	return r
}

// RecordTick records the intents applied before one Stage tick
func (r *Recorder) RecordTick(intents []system.Intent) {
	if !r.recording {
		return
	}

	frame := FrameInput{F: r.tick}
	for _, in := range intents {
		switch in := in.(type) {
		case system.KeyIntent:
			frame.Keys = append(frame.Keys, KeyEvent{P: in.Player, D: in.Direction.String(), Down: in.Pressed})
		case system.PauseIntent:
			frame.Pause = in.Paused
			frame.Resume = !in.Paused
		}
	}
	if len(frame.Keys) > 0 || frame.Pause || frame.Resume {
		r.data.Frames = append(r.data.Frames, frame)
	}

	r.tick++
	r.data.Ticks = r.tick
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.Ticks == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return r.tick
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
