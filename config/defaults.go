// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Built-in defaults for the texelhost configuration store.

package config

func applySystemDefaults(cfg Config) {
	cfg.RegisterDefaults("screen", Section{
		"buffer_width":  float64(80),
		"buffer_height": float64(300),
		"window_width":  float64(80),
		"window_height": float64(24),
		"wrap_text":     true,
		"cursor_size":   float64(25),
	})
	cfg.RegisterDefaults("window", Section{
		"font_width":  float64(8),
		"font_height": float64(16),
		"hscroll_px":  float64(16),
		"vscroll_px":  float64(16),
	})
	cfg.RegisterDefaults("store", Section{
		"snapshot_db": "snapshots.db",
	})
}
