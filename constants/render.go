package constants

// Scene colors
const (
	ColorBackground = "#0a0e1a"
	ColorGridLine   = "#ffffff"
	ColorSnakeHead  = "#22d3ee"
	ColorSnakeBody  = "#06b6d4"
	ColorFood       = "#e879f9"
	ColorFoodGlow   = "#d946ef"
	ColorFoodInner  = "#d946ef"
	ColorPrompt     = "#ffffff"
)

// Scene opacity and geometry
const (
	// GridLineAlpha is the opacity of the grid lines
	GridLineAlpha = 0.02

	// BodyAlphaFalloff is the opacity lost from head to tail
	BodyAlphaFalloff = 0.55

	// SegmentPadding insets a segment inside its cell
	SegmentPadding = 1

	// SegmentRadius is the corner radius of a segment
	SegmentRadius = 3

	// HeadGlowBlur/FoodGlowBlur are the fallback glow radii
	HeadGlowBlur = 14.0
	FoodGlowBlur = 18.0

	// HeadGlowAlpha/FoodGlowAlpha are the glow opacities
	HeadGlowAlpha = 0.5
	FoodGlowAlpha = 0.6

	// PromptAlpha is the idle text opacity
	PromptAlpha = 0.12

	// PausedOverlayAlpha dims the live scene while paused
	PausedOverlayAlpha = 0.45

	// GlowSteps is the number of rings approximating a blurred glow
	GlowSteps = 4
)

// Prompt text
const (
	IdlePrompt   = "Press Space to play"
	PausedPrompt = "PAUSED"
)
