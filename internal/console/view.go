package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regiontrip/internal/domain"
)

const ruleWidth = 50

// Palette
var (
	accent  = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	warning = lipgloss.Color("#FFC107")
	info    = lipgloss.Color("#2196F3")
)

// View renders the explorer screens to a writer.
type View struct {
	w   io.Writer
	msg *Messages

	title lipgloss.Style
	head  lipgloss.Style
	warn  lipgloss.Style
	code  lipgloss.Style
	pick  lipgloss.Style
}

// NewView returns a View writing to w. Colors are only emitted when w is a
// terminal that supports them.
func NewView(w io.Writer, msg *Messages) *View {
	r := lipgloss.NewRenderer(w)
	return &View{
		w:     w,
		msg:   msg,
		title: r.NewStyle().Bold(true).Foreground(accent),
		head:  r.NewStyle().Bold(true),
		warn:  r.NewStyle().Foreground(warning),
		code:  r.NewStyle().Foreground(info),
		pick:  r.NewStyle().Bold(true).Foreground(accent),
	}
}

// Messages returns the localizer used by the view.
func (v *View) Messages() *Messages { return v.msg }

func (v *View) println(a ...any) { fmt.Fprintln(v.w, a...) }

func (v *View) rule() string { return strings.Repeat("=", ruleWidth) }

// banner prints a leading blank line, a rule, the header and another rule.
func (v *View) banner(header string) {
	v.println()
	v.println(v.rule())
	v.println(v.head.Render(header))
	v.println(v.rule())
}

// Title prints the program title.
func (v *View) Title() {
	v.println(v.title.Render(v.msg.Text(MsgTitle)))
	v.println(v.rule())
}

// Prompt writes the prompt for id without a trailing newline.
func (v *View) Prompt(id string) {
	fmt.Fprint(v.w, v.msg.Text(id))
}

// Warn prints a localized warning.
func (v *View) Warn(id string) {
	v.println(v.warn.Render(v.msg.Text(id)))
}

// ProvinceMenu lists the provinces at the root.
func (v *View) ProvinceMenu(provinces []domain.Province) {
	v.println()
	v.println(v.msg.Text(MsgProvinceListHeader))
	for _, p := range provinces {
		v.println(v.code.Render(p.Code.String()) + ": " + p.Name)
	}
	v.println()
}

// Subregions prints every district of a freshly loaded province together with
// its attractions.
func (v *View) Subregions(parent string, ds []domain.District, catalog domain.RegionCatalog) {
	v.banner(v.msg.Format(MsgSubregionsHeader, map[string]any{"Parent": parent}))
	for _, d := range ds {
		v.println()
		v.println("📍 " + v.code.Render(d.Code.String()) + ": " + d.Name)
		spots := catalog.Attractions(d.Code)
		if len(spots) == 0 {
			v.println(v.msg.Text(MsgSubregionNoSpots))
			continue
		}
		v.println(v.msg.Text(MsgSubregionSpots))
		for _, s := range spots {
			v.println("      - " + s.Name)
		}
	}
}

// DistrictMenu prints the district level menu.
func (v *View) DistrictMenu(parent string, ds []domain.District) {
	v.println()
	v.println(v.msg.Format(MsgDistrictMenuHeader, map[string]any{"Parent": parent}))
	v.println(v.msg.Text(MsgBackHint))
	v.println(v.msg.Text(MsgQuitHint))
	for _, d := range ds {
		v.println(v.code.Render(d.Code.String()) + ": " + d.Name)
	}
	v.println()
}

// RegionInfo prints the attractions of one selected region.
func (v *View) RegionInfo(name string, spots []domain.Attraction) {
	v.banner(v.msg.Format(MsgRegionInfoHeader, map[string]any{"Name": name}))
	v.println()
	if len(spots) == 0 {
		v.println(v.warn.Render(v.msg.Text(MsgRegionNoSpots)))
		return
	}
	v.println(v.msg.Text(MsgRegionSpots))
	for i, s := range spots {
		fmt.Fprintf(v.w, "%d. %s\n", i+1, s.Name)
		fmt.Fprintf(v.w, "   - %s\n", s.Description)
	}
}

// Candidates prints the final candidate list.
func (v *View) Candidates(parent string, lines []string) {
	v.banner(v.msg.Format(MsgCandidatesHeader, map[string]any{"Parent": parent}))
	for _, l := range lines {
		v.println(l)
	}
}

// Recommendation prints the random pick.
func (v *View) Recommendation(line string) {
	v.println()
	v.println(v.rule())
	v.println(v.pick.Render(v.msg.Format(MsgRecommendation, map[string]any{"Destination": line})))
}

// Attractions prints a plain attraction list, one per line.
func (v *View) Attractions(spots []domain.Attraction) {
	if len(spots) == 0 {
		v.println(v.warn.Render(v.msg.Text(MsgRegionNoSpots)))
		return
	}
	for i, s := range spots {
		fmt.Fprintf(v.w, "%d. %s - %s\n", i+1, s.Name, s.Description)
	}
}

// Districts prints a plain "code: name" list.
func (v *View) Districts(lines []string) {
	for _, l := range lines {
		v.println(l)
	}
}
