package config

// Physical constants (simplified CRT model).
const (
	ElectronCharge = 1.602e-19 // Coulombs
	ElectronMass   = 9.109e-31 // kg

	// Scale factor that makes deflection visible on screen.
	DeflectionScale = 5000.0
)

// Screen and rendering.
const (
	ScreenXMax  = 100.0 // Screen bounds: x in [-ScreenXMax, ScreenXMax]
	ScreenYMax  = 60.0  // y in [-ScreenYMax, ScreenYMax]
	AspectRatio = 0.5   // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS   = 30    // Target frames per second
)

// Simulation defaults.
const (
	DefaultDt           = 0.01   // Seconds of simulated time per tick
	DefaultAcceleration = 2000.0 // V
	DefaultAmplitude    = 50.0   // V
	DefaultFrequency    = 1.0    // Hz
	DefaultTrailCap     = 100    // points

	HistoryWindow = 5.0 // Voltage trace retention window in seconds
)

// Parameter ranges the UI enforces before calling kernel setters.
const (
	AccelMin, AccelMax         = 500.0, 5000.0
	ManualVMin, ManualVMax     = -100.0, 100.0
	AmplitudeMin, AmplitudeMax = 0.0, 200.0
	FrequencyMin, FrequencyMax = 0.1, 100.0
	PhaseMin, PhaseMax         = 0.0, 360.0
	TrailCapMin, TrailCapMax   = 10, 1000
)

// RatioPresets are the frequency-ratio pairs (fx, fy) exposed by the UI.
var RatioPresets = [][2]float64{{1, 1}, {1, 2}, {1, 3}, {2, 3}}

// DeltaPresets are the target phase-difference presets in degrees
// (0, pi/4, pi/2, 3pi/4, pi).
var DeltaPresets = []float64{0, 45, 90, 135, 180}

// App.
const (
	AppName    = "CRT-SCOPE"
	AppVersion = "1.0"
)
