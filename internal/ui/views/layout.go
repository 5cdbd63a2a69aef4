package views

// Span is a half-open column range [Start, End)
type Span struct {
	Start, End int
}

func (s Span) contains(x int) bool {
	return x >= s.Start && x < s.End
}

// HitKind is the control under a screen position
type HitKind int

const (
	HitNone HitKind = iota
	HitPrevious
	HitNext
	HitMarker
	HitStage
)

// Hit is the result of a hit test
type Hit struct {
	Kind  HitKind
	Index int // marker index for HitMarker
}

// controlWidth is the number of columns each side control reacts to
const controlWidth = 2

// Layout is the screen geometry shared by rendering and hit testing
type Layout struct {
	Width        int
	Height       int
	StageTop     int
	StageHeight  int
	ProgressRow  int // -1 when the progress bar is hidden
	HelpRow      int // first help row, -1 when the help bar is hidden
	HelpHeight   int
	ShowControls bool
	Markers      []Span
}

// NewLayout computes the layout for a terminal of the given size
func NewLayout(width, height, panels int, showControls, showProgress, showHelp bool) Layout {
	helpHeight := 0
	if showHelp {
		helpHeight = 1
	}
	return newLayout(width, height, panels, showControls, showProgress, helpHeight)
}

// WithHelpHeight returns the layout with n rows reserved for help, taken
// from the stage
func (l Layout) WithHelpHeight(n int) Layout {
	return newLayout(l.Width, l.Height, len(l.Markers), l.ShowControls, l.ProgressRow >= 0, n)
}

func newLayout(width, height, panels int, showControls, showProgress bool, helpHeight int) Layout {
	l := Layout{
		Width:        width,
		Height:       height,
		StageTop:     1,
		ProgressRow:  -1,
		HelpRow:      -1,
		HelpHeight:   max(helpHeight, 0),
		ShowControls: showControls && width > 2*controlWidth,
	}

	reserved := 1 + l.HelpHeight // title row and help
	if showProgress {
		reserved++
	}
	l.StageHeight = height - reserved
	if l.StageHeight < 3 {
		l.StageHeight = 3
	}

	row := l.StageTop + l.StageHeight
	if showProgress {
		l.ProgressRow = row
		l.Markers = markerSpans(width, panels)
		row++
	}
	if l.HelpHeight > 0 {
		l.HelpRow = row
	}

	return l
}

// ControlRow is the stage row the side controls are drawn on
func (l Layout) ControlRow() int {
	return l.StageTop + l.StageHeight/2
}

// HitTest returns the control at column x, row y
func (l Layout) HitTest(x, y int) Hit {
	if y == l.ProgressRow {
		for i, s := range l.Markers {
			if s.contains(x) {
				return Hit{Kind: HitMarker, Index: i}
			}
		}
		return Hit{}
	}

	if y < l.StageTop || y >= l.StageTop+l.StageHeight {
		return Hit{}
	}
	if l.ShowControls {
		if x >= 0 && x < controlWidth {
			return Hit{Kind: HitPrevious}
		}
		if x >= l.Width-controlWidth && x < l.Width {
			return Hit{Kind: HitNext}
		}
	}
	return Hit{Kind: HitStage}
}

// markerSpans lays out one marker per panel across the middle half of the
// width, separated by one column. Markers that do not fit take the whole
// width, then drop the gaps. With more panels than columns each panel gets
// its share of the row, so some markers are zero wide.
func markerSpans(width, n int) []Span {
	if n <= 0 || width <= 0 {
		return nil
	}

	spans := make([]Span, n)
	if n > width {
		for i := range spans {
			spans[i] = Span{Start: i * width / n, End: (i + 1) * width / n}
		}
		return spans
	}

	gap := 1
	total := width / 2
	if n+gap*(n-1) > total {
		total = width
	}
	if n+gap*(n-1) > total {
		gap = 0
	}
	seg := (total - gap*(n-1)) / n
	used := seg*n + gap*(n-1)
	start := (width - used) / 2

	for i := range spans {
		s := start + i*(seg+gap)
		spans[i] = Span{Start: s, End: s + seg}
	}
	return spans
}
