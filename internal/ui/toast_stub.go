//go:build !ebiten

package ui

import "lifegrid/internal/render"

// Toast is a no-op placeholder used when the ebiten build tag is absent.
type Toast struct{}

// NewToast constructs a stub toast overlay.
func NewToast() *Toast { return &Toast{} }

// Show is a no-op in headless builds.
func (t *Toast) Show(string) {}

// Update is a no-op in headless builds.
func (t *Toast) Update() {}

// Draw is a no-op placeholder.
func (t *Toast) Draw(any, render.Theme) {}
