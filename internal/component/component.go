package component

// Position is a point in world space.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rect is a sub-region of a sprite atlas.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Transform scales and rotates a drawable.
type Transform struct {
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
	Degrees float64 `yaml:"degrees"`
}

// Sprite references a region of a named atlas.
type Sprite struct {
	Atlas  string `yaml:"atlas"`
	Origin Rect   `yaml:"origin"`
}

// Tag names an entity and the group it belongs to (Controller, NPC, Prop).
type Tag struct {
	Name  string `yaml:"name"`
	Group string `yaml:"group"`
}
