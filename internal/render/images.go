package render

// LayoutKind names the fixed image-grid arrangements.
type LayoutKind int

const (
	LayoutNone LayoutKind = iota
	LayoutSingle
	LayoutPair
	LayoutFeature
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutSingle:
		return "single"
	case LayoutPair:
		return "pair"
	case LayoutFeature:
		return "feature"
	default:
		return "none"
	}
}

// Tile places one image on the grid. Col/Row are zero-based cell offsets.
type Tile struct {
	Index   int
	URL     string
	Col     int
	Row     int
	ColSpan int
	RowSpan int
}

// ImageLayout is the grid for a response's images.
type ImageLayout struct {
	Kind    LayoutKind
	Columns int
	Rows    int
	Tiles   []Tile
}

// LayoutImages picks the grid for urls: nothing for zero, one full-width tile,
// two side by side, or for three and more a 3x2 grid where the first image
// spans 2x2 and the next two stack in the right column. Images past the
// third are not shown.
func LayoutImages(urls []string) ImageLayout {
	switch n := len(urls); {
	case n == 0:
		return ImageLayout{Kind: LayoutNone}
	case n == 1:
		return ImageLayout{
			Kind:    LayoutSingle,
			Columns: 1,
			Rows:    1,
			Tiles:   []Tile{{Index: 0, URL: urls[0], ColSpan: 1, RowSpan: 1}},
		}
	case n == 2:
		return ImageLayout{
			Kind:    LayoutPair,
			Columns: 2,
			Rows:    1,
			Tiles: []Tile{
				{Index: 0, URL: urls[0], ColSpan: 1, RowSpan: 1},
				{Index: 1, URL: urls[1], Col: 1, ColSpan: 1, RowSpan: 1},
			},
		}
	default:
		return ImageLayout{
			Kind:    LayoutFeature,
			Columns: 3,
			Rows:    2,
			Tiles: []Tile{
				{Index: 0, URL: urls[0], ColSpan: 2, RowSpan: 2},
				{Index: 1, URL: urls[1], Col: 2, ColSpan: 1, RowSpan: 1},
				{Index: 2, URL: urls[2], Col: 2, Row: 1, ColSpan: 1, RowSpan: 1},
			},
		}
	}
}
