// Package store persists the simulator configuration and board between runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
)

// State is the on-disk record. Cells is the row-major board encoded as a
// string of '0'/'1' runes with length width*height.
type State struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Speed  int    `json:"speed"`
	Wrap   bool   `json:"wrap"`
	Theme  string `json:"theme"`
	Cells  string `json:"cells"`
}

type rawState struct {
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
	Speed  *int    `json:"speed"`
	Wrap   *bool   `json:"wrap"`
	Theme  *string `json:"theme"`
	Cells  *string `json:"cells"`
}

// DefaultPath returns the per-user location of the state file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "lifegrid", "state.json"), nil
}

// Load reads and sanitizes the state file. Every field falls back to its
// default individually; a missing or unreadable file yields the defaults and
// an empty board. The returned settings are always within bounds.
func Load(path string) (core.Settings, *core.Board) {
	settings := core.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, core.NewBoard(settings.Width, settings.Height)
	}

	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings, core.NewBoard(settings.Width, settings.Height)
	}

	if raw.Width != nil {
		settings.Width = core.ClampBoardSize(*raw.Width)
	}
	if raw.Height != nil {
		settings.Height = core.ClampBoardSize(*raw.Height)
	}
	if raw.Speed != nil {
		settings.Speed = core.ClampSpeed(*raw.Speed)
	}
	if raw.Wrap != nil {
		settings.Wrap = *raw.Wrap
	}
	if raw.Theme != nil && render.KnownTheme(*raw.Theme) {
		settings.Theme = *raw.Theme
	}

	board := core.NewBoard(settings.Width, settings.Height)
	if raw.Cells != nil {
		DecodeCells(board, *raw.Cells)
	}
	return settings, board
}

// Save writes the state file, creating the parent directory as needed.
func Save(path string, settings core.Settings, board *core.Board) error {
	if board == nil {
		return errors.New("save: nil board")
	}
	state := State{
		Width:  board.W,
		Height: board.H,
		Speed:  settings.Speed,
		Wrap:   settings.Wrap,
		Theme:  settings.Theme,
		Cells:  EncodeCells(board),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// EncodeCells renders the board as a row-major '0'/'1' string.
func EncodeCells(board *core.Board) string {
	cells := board.Cells()
	out := make([]byte, len(cells))
	for i, c := range cells {
		if c != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// DecodeCells fills the board from an encoded cell string. Runes other than
// '0' and '1' are stripped; if the remainder is shorter than the board, the
// trailing cells stay dead.
func DecodeCells(board *core.Board, encoded string) {
	cells := board.Cells()
	i := 0
	for _, r := range encoded {
		if i >= len(cells) {
			break
		}
		switch r {
		case '0':
			cells[i] = 0
			i++
		case '1':
			cells[i] = 1
			i++
		}
	}
}
