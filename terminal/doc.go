// Package terminal presents the rendered canvas on a text terminal through tcell.
//
// Features:
//   - Quadrant block glyphs give 2x2 sub-cell resolution, each cell picks the
//     fg/bg split with the least color error
//   - Background-only mode for terminals with poor block glyph support
//   - Scoreboard and leaderboard lines drawn from the HUD
//   - Key translation into frontend-neutral input keys
package terminal
