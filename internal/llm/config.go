package llm

// Default model names. The image model is addressed over the raw generateContent
// endpoint (see internal/imagegen); the text model goes through the SDK.
const (
	// DefaultTextModel is used for all structured generation stages.
	DefaultTextModel = "gemini-2.5-flash"
	// DefaultImageModel produces inline image data for character references.
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultTemperature balances variety against schema discipline.
	DefaultTemperature float32 = 0.7
)
