package game

// GravityDirection is one entry of the fixed rotation table: a unit force
// vector plus its display glyph.
type GravityDirection struct {
	Name  string
	Dir   Vec
	Glyph rune
}

// gravityTable order defines rotation order. Index 0 is the session start
// direction; the UI glyph/rotation mapping depends on this order.
var gravityTable = [4]GravityDirection{
	{Name: "down", Dir: Vec{X: 0, Y: 1}, Glyph: '↓'},
	{Name: "up", Dir: Vec{X: 0, Y: -1}, Glyph: '↑'},
	{Name: "left", Dir: Vec{X: -1, Y: 0}, Glyph: '←'},
	{Name: "right", Dir: Vec{X: 1, Y: 0}, Glyph: '→'},
}

// GravityField cycles through the four directions. Advanced either by the
// player or by the session scheduler; both go through Advance so there is
// exactly one rotation code path.
type GravityField struct {
	idx int
}

func NewGravityField() *GravityField {
	return &GravityField{}
}

func (g *GravityField) Current() GravityDirection {
	return gravityTable[g.idx]
}

// Advance steps to the next direction and returns it. Deterministic: the
// field cycles through all four entries before repeating.
func (g *GravityField) Advance() GravityDirection {
	g.idx = (g.idx + 1) % len(gravityTable)
	return gravityTable[g.idx]
}

// Reset returns the field to the start of the cycle (down).
func (g *GravityField) Reset() {
	g.idx = 0
}

// Index reports the current position in the rotation table.
func (g *GravityField) Index() int {
	return g.idx
}
