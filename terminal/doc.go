// Package terminal owns the tcell screen for the game.
//
// Features:
//   - TTY and size preflight before the screen is touched
//   - Raw mode, hidden cursor and clean restore on Fini
//   - Bounded-wait key polling for the input poller
//   - Emergency restore from panic recovery when Fini cannot run
package terminal
