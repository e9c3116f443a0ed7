package navigator

import (
	"context"
	"strings"

	"regiontrip/internal/domain"
)

// Input tokens understood at every prompt.
const (
	QuitToken = "q"
	BackToken = "~"
)

// State is the position of the navigator in the region hierarchy.
type State int

const (
	// Root means no province has been chosen yet.
	Root State = iota
	// ProvinceSelected means a province's district list is loaded.
	ProvinceSelected
	// DistrictSelected means a code was picked from the loaded list.
	DistrictSelected
)

func (s State) String() string {
	switch s {
	case Root:
		return "root"
	case ProvinceSelected:
		return "province"
	case DistrictSelected:
		return "district"
	}
	return "unknown"
}

// Kind classifies the effect of one input.
type Kind int

const (
	// Invalid input changed nothing.
	Invalid Kind = iota
	// Descended loaded a province's districts from the root.
	Descended
	// Selected picked a code from the loaded list or a province code.
	Selected
	// Back restored the previous frame.
	Back
	// BackEmpty had no frame to restore.
	BackEmpty
	// FetchFailed found no districts for a valid province.
	FetchFailed
	// TooDeep refused to descend because the history is full.
	TooDeep
	// Confirm accepted the loaded district list as the candidate set.
	Confirm
	// Quit ends the program.
	Quit
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Descended:
		return "descended"
	case Selected:
		return "selected"
	case Back:
		return "back"
	case BackEmpty:
		return "back-empty"
	case FetchFailed:
		return "fetch-failed"
	case TooDeep:
		return "too-deep"
	case Confirm:
		return "confirm"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Outcome reports what Handle did.
type Outcome struct {
	Kind Kind
	// Frame is the position after handling the input.
	Frame domain.Frame
	// Name is the province name for Descended and the selected region's
	// name for Selected. It is empty when the name is unknown.
	Name string
	// Attractions of the selected code, for Selected.
	Attractions []domain.Attraction
}

// Navigator walks the province → district hierarchy with back navigation.
//
// The zero position is the root. Descending from the root saves the root
// frame, so going back from a province returns to the province menu. Every
// selection at the district level saves the frame that was current before it.
type Navigator struct {
	catalog domain.RegionCatalog
	source  domain.DistrictSource
	stack   *Stack

	current   domain.RegionCode
	districts []domain.District
}

// New returns a navigator at the root. maxDepth bounds the history; see NewStack.
func New(catalog domain.RegionCatalog, source domain.DistrictSource, maxDepth int) *Navigator {
	return &Navigator{
		catalog: catalog,
		source:  source,
		stack:   NewStack(maxDepth),
	}
}

// State derives the navigator state from the history depth.
func (n *Navigator) State() State {
	switch d := n.stack.Len(); {
	case d == 0:
		return Root
	case d == 1:
		return ProvinceSelected
	default:
		return DistrictSelected
	}
}

// Depth returns the number of descent steps taken.
func (n *Navigator) Depth() int { return n.stack.Len() }

// Current returns a copy of the current position.
func (n *Navigator) Current() domain.Frame {
	return domain.Frame{Code: n.current, Districts: cloneDistricts(n.districts)}
}

// Candidates returns the loaded district list.
func (n *Navigator) Candidates() []domain.District {
	return cloneDistricts(n.districts)
}

// ParentName returns the name of the province the current code belongs to.
func (n *Navigator) ParentName() (string, bool) {
	p, ok := n.catalog.Province(n.current.Province())
	return p.Name, ok
}

// Valid reports whether code is a known province code or exactly matches a
// code in the loaded district list.
func (n *Navigator) Valid(code domain.RegionCode) bool {
	if code == "" {
		return false
	}
	if code.IsProvince() {
		if _, ok := n.catalog.Province(code); ok {
			return true
		}
	}
	for _, d := range n.districts {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Handle applies one line of user input. Surrounding whitespace is ignored
// and the quit token is case-insensitive.
func (n *Navigator) Handle(ctx context.Context, input string) Outcome {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, QuitToken) {
		return n.outcome(Quit)
	}
	if n.State() == Root {
		return n.descend(ctx, domain.RegionCode(input))
	}
	switch input {
	case BackToken:
		return n.back()
	case "":
		return n.outcome(Confirm)
	}
	return n.selectCode(domain.RegionCode(input))
}

func (n *Navigator) descend(ctx context.Context, code domain.RegionCode) Outcome {
	p, ok := n.catalog.Province(code)
	if !ok {
		return n.outcome(Invalid)
	}
	ds := n.source.Districts(ctx, code)
	if len(ds) == 0 {
		return n.outcome(FetchFailed)
	}
	if err := n.stack.Push(n.Current()); err != nil {
		return n.outcome(TooDeep)
	}
	n.current = code
	n.districts = cloneDistricts(ds)

	out := n.outcome(Descended)
	out.Name = p.Name
	return out
}

func (n *Navigator) selectCode(code domain.RegionCode) Outcome {
	if !n.Valid(code) {
		return n.outcome(Invalid)
	}
	name := n.nameOf(code)
	if err := n.stack.Push(n.Current()); err != nil {
		return n.outcome(TooDeep)
	}
	n.current = code

	out := n.outcome(Selected)
	out.Name = name
	out.Attractions = n.catalog.Attractions(code)
	return out
}

func (n *Navigator) back() Outcome {
	f, ok := n.stack.Pop()
	if !ok {
		return n.outcome(BackEmpty)
	}
	n.current = f.Code
	n.districts = f.Districts
	return n.outcome(Back)
}

// nameOf prefers the district name from the loaded list, then the province table.
func (n *Navigator) nameOf(code domain.RegionCode) string {
	for _, d := range n.districts {
		if d.Code == code {
			return d.Name
		}
	}
	if p, ok := n.catalog.Province(code); ok {
		return p.Name
	}
	return ""
}

func (n *Navigator) outcome(k Kind) Outcome {
	return Outcome{Kind: k, Frame: n.Current()}
}
