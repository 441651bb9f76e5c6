package media

// TileState is the load state of one image tile.
type TileState int

const (
	TileLoading TileState = iota
	TileLoaded
)

func (s TileState) String() string {
	if s == TileLoaded {
		return "loaded"
	}
	return "loading"
}

// Tile tracks a single image independently of its siblings. It starts as a
// placeholder and only ever moves forward to loaded.
type Tile struct {
	URL   string
	State TileState
	Asset Asset
	Err   error
}

// NewTiles returns one loading tile per url, in order.
func NewTiles(urls []string) []Tile {
	tiles := make([]Tile, len(urls))
	for i, u := range urls {
		tiles[i] = Tile{URL: u}
	}
	return tiles
}

// Loaded marks the tile as loaded with asset. Reports whether state changed.
func (t *Tile) Loaded(asset Asset) bool {
	if t.State == TileLoaded {
		return false
	}
	t.State = TileLoaded
	t.Asset = asset
	t.Err = nil
	return true
}

// Failed records a fetch error. The tile keeps its placeholder.
func (t *Tile) Failed(err error) {
	if t.State == TileLoaded {
		return
	}
	t.Err = err
}
