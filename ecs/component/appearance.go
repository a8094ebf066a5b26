package component

import "image/color"

// Appearance is the flat colour a body is drawn with.
type Appearance struct {
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
