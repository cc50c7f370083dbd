// Package navbar implements a configurable navigation bar for Bubble Tea
// programs: a title, left/right button zones with a built-in back button,
// width-balanced title centering, per-button tap locking, and a process-wide
// registry of style and back-action overrides.
package navbar
