package ui

// Layout sizing of the recipe screen
const (
	HeaderHeight  float32 = 400
	ToolbarHeight float32 = 56

	CircularButtonSize float32 = 38
	InfoIconSize       float32 = 24

	CardSize      float32 = 100
	CardIconSize  float32 = 60
	CardRadius    float32 = 16
	SurfaceRadius float32 = 12
	ChipRadius    float32 = 8

	TabHeight float32 = 44

	SectionPadding float32 = 16

	TitleTextSize    float32 = 26
	SubtitleTextSize float32 = 14
)

// Parallax tuning
const (
	// ImageParallaxFactor is the share of the scroll distance the hero image lags behind
	ImageParallaxFactor float32 = 0.5
	// GradientStart is the fraction of the hero image height where the fade starts
	GradientStart float32 = 0.4
)

// Screen texts
const (
	TextServing     = "Serving"
	TextIngredients = "Ingredients"
	TextTools       = "Tools"
	TextSteps       = "Steps"
	TextSettings    = "Settings"
	TextFile        = "File"
	TextNothingHere = "Nothing here yet"
)
