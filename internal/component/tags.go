package component

// PlayerControlled marks entities steered by the movement keys.
type PlayerControlled struct{}

// CurrentPlayer marks the entity that owns the wallet planted timers pay into.
type CurrentPlayer struct{}

// Sprite attaches a visual to an entity. Visual is a handle into the render
// collaborator's image table, not an image.
type Sprite struct {
	Visual string
}
