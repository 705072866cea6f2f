// Package ui draws the window build's side panel and board overlay. Its
// contents require the ebiten build tag.
package ui
