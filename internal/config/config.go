package config

import "time"

const (
	WindowWidth  = 480
	WindowHeight = 320
	WindowTitle  = "Shiny Button - press and hold, O: choose a burst sound, Esc/Q: Quit"

	// Button dimensions
	ButtonWidth  = 240
	ButtonHeight = 80
	ButtonX      = 120
	ButtonY      = 120
	ButtonLabel  = "Shiny"

	// Glow animation
	BaseRadius      = 50
	FollowStep      = 0.03
	ActiveStep      = 0.1
	ScaleStep       = 0.1
	ActiveScale     = 15
	ProximityRadius = 40
	MinScale        = 0.2
	MaxScale        = 1
	LeaveX          = 150
	LeaveY          = -50

	// Audio
	SampleRate     = 44100
	ChimeFrequency = 880
	ChimeDuration  = 600 * time.Millisecond
	LevelRingSize  = 2048

	// Terminal host
	FrameInterval = 16 * time.Millisecond
	CellWidth     = 8
	CellHeight    = 16
)
