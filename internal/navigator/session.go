package navigator

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"

	"go.uber.org/zap"

	"regiontrip/internal/console"
	"regiontrip/internal/domain"
	"regiontrip/internal/recommend"
)

// Result is how an interactive session ended.
type Result struct {
	// Quit is set when the user quit or the input ran out.
	Quit bool
	// Candidates is the district list that was loaded when the user confirmed.
	Candidates []domain.District
	// Recommendation is the random pick; only meaningful when Recommended.
	Recommendation domain.District
	Recommended    bool
}

// Session runs the interactive prompt loop around a Navigator.
type Session struct {
	nav     *Navigator
	catalog domain.RegionCatalog
	view    *console.View
	in      *console.Input
	rng     *rand.Rand
	log     *zap.Logger
}

// NewSession binds nav to a console. A nil logger discards diagnostics.
func NewSession(
	nav *Navigator,
	catalog domain.RegionCatalog,
	view *console.View,
	in *console.Input,
	rng *rand.Rand,
	log *zap.Logger,
) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{nav: nav, catalog: catalog, view: view, in: in, rng: rng, log: log}
}

// Run prompts until the user quits or confirms a district list. Running out
// of input counts as quitting.
func (s *Session) Run(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		prompt := console.MsgDistrictPrompt
		if s.nav.State() == Root {
			s.view.ProvinceMenu(s.catalog.Provinces())
			prompt = console.MsgProvincePrompt
		} else {
			s.view.DistrictMenu(s.parentName(), s.nav.Candidates())
		}
		s.view.Prompt(prompt)

		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return Result{Quit: true}, nil
		}
		if err != nil {
			return Result{}, err
		}

		out := s.nav.Handle(ctx, line)
		s.log.Debug("navigation step",
			zap.String("input", line),
			zap.Stringer("outcome", out.Kind),
			zap.Stringer("state", s.nav.State()),
			zap.Int("depth", s.nav.Depth()),
		)

		switch out.Kind {
		case Quit:
			return Result{Quit: true}, nil
		case Confirm:
			return s.finalize(), nil
		case Descended:
			s.view.Subregions(out.Name, out.Frame.Districts, s.catalog)
		case Selected:
			s.view.RegionInfo(s.nameOr(out.Name), out.Attractions)
		case Back:
			// the restored menu is printed on the next turn
		case BackEmpty:
			s.view.Warn(console.MsgBackEmpty)
		case FetchFailed:
			s.view.Warn(console.MsgFetchFailed)
		case TooDeep:
			s.view.Warn(console.MsgTooDeep)
		default:
			s.view.Warn(console.MsgInvalidCode)
		}
	}
}

// finalize prints the confirmed district list and one random pick from it.
func (s *Session) finalize() Result {
	res := Result{Candidates: s.nav.Candidates()}
	if len(res.Candidates) == 0 {
		s.view.Warn(console.MsgNoCandidates)
		return res
	}

	s.view.Candidates(s.parentName(), recommend.FormatAll(res.Candidates))

	pick, ok := recommend.Pick(s.rng, res.Candidates)
	if !ok {
		return res
	}
	res.Recommendation, res.Recommended = pick, true
	s.view.Recommendation(recommend.Format(pick))
	s.log.Debug("recommended",
		zap.String("code", pick.Code.String()),
		zap.Int("candidates", len(res.Candidates)),
	)
	return res
}

func (s *Session) parentName() string {
	name, _ := s.nav.ParentName()
	return s.nameOr(name)
}

func (s *Session) nameOr(name string) string {
	if name == "" {
		return s.view.Messages().Text(console.MsgUnknownRegion)
	}
	return name
}
