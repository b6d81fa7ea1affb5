package starcatch

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Score is the per-run counter. It exists only while a game is in progress.
type Score struct {
	Value uint32
}

// ScoreRecorder mirrors finished-run scores somewhere queryable.
// storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(score int) (int64, error)
}

// HighScores is the process-lifetime history of final scores, appended on
// every game over and never cleared. One instance is created by the host and
// handed to the game explicitly.
type HighScores struct {
	history  []uint32
	recorder ScoreRecorder
	logger   *log.Logger
}

// NewHighScores creates an empty history. recorder and logger may be nil.
func NewHighScores(recorder ScoreRecorder, logger *log.Logger) *HighScores {
	return &HighScores{
		recorder: recorder,
		logger:   orDiscard(logger),
	}
}

// Record appends a final score and mirrors it to the recorder.
// Recorder failures are logged and otherwise ignored.
func (h *HighScores) Record(score uint32) {
	h.history = append(h.history, score)
	if h.recorder == nil {
		return
	}
	if _, err := h.recorder.SaveScore(int(score)); err != nil {
		h.logger.Warn("could not mirror score", "score", score, "error", err)
	}
}

// History returns a copy of all recorded scores in the order they were set.
func (h *HighScores) History() []uint32 {
	return slices.Clone(h.history)
}

// Best returns the highest recorded score.
func (h *HighScores) Best() (uint32, bool) {
	if len(h.history) == 0 {
		return 0, false
	}
	return slices.Max(h.history), true
}

// Len returns the number of recorded runs.
func (h *HighScores) Len() int {
	return len(h.history)
}
