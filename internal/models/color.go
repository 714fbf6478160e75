package models

// Color is an HSB color with components in the 0-1 range.
type Color struct {
	Hue        float64 `json:"h"`
	Saturation float64 `json:"s"`
	Brightness float64 `json:"b"`
}
