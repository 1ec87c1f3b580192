package routine

// PaletteColor is one named entry of the fixed color palette.
type PaletteColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Palette is the fixed set of eight routine colors. It seeds pickers and
// provides the default; stored colors are not validated against it, so a
// routine loaded with an unknown color string keeps it.
var Palette = []PaletteColor{
	{Name: "Blue", Value: "#3B82F6"},
	{Name: "Green", Value: "#10B981"},
	{Name: "Purple", Value: "#8B5CF6"},
	{Name: "Red", Value: "#EF4444"},
	{Name: "Orange", Value: "#F59E0B"},
	{Name: "Pink", Value: "#EC4899"},
	{Name: "Indigo", Value: "#6366F1"},
	{Name: "Teal", Value: "#14B8A6"},
}

// DefaultColor is the color applied when a form omits one.
func DefaultColor() string {
	return Palette[0].Value
}

// PaletteColorByName resolves a palette entry by its display name,
// case-sensitively.
func PaletteColorByName(name string) (PaletteColor, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	return PaletteColor{}, false
}
