package console

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "ko"

// Message identifiers, one per entry of the locale files.
const (
	MsgTitle              = "Title"
	MsgAppKeyPrompt       = "AppKeyPrompt"
	MsgAppKeyMissing      = "AppKeyMissing"
	MsgProvinceListHeader = "ProvinceListHeader"
	MsgProvincePrompt     = "ProvincePrompt"
	MsgInvalidCode        = "InvalidCode"
	MsgFetchFailed        = "FetchFailed"
	MsgSubregionsHeader   = "SubregionsHeader"
	MsgSubregionSpots     = "SubregionSpots"
	MsgSubregionNoSpots   = "SubregionNoSpots"
	MsgDistrictMenuHeader = "DistrictMenuHeader"
	MsgBackHint           = "BackHint"
	MsgQuitHint           = "QuitHint"
	MsgDistrictPrompt     = "DistrictPrompt"
	MsgBackEmpty          = "BackEmpty"
	MsgTooDeep            = "TooDeep"
	MsgRegionInfoHeader   = "RegionInfoHeader"
	MsgRegionSpots        = "RegionSpots"
	MsgRegionNoSpots      = "RegionNoSpots"
	MsgUnknownRegion      = "UnknownRegion"
	MsgNoCandidates       = "NoCandidates"
	MsgCandidatesHeader   = "CandidatesHeader"
	MsgRecommendation     = "Recommendation"
)

// Messages localizes user-facing text.
type Messages struct {
	loc *i18n.Localizer
	tag language.Tag
}

// NewMessages loads the embedded locale files and returns messages for lang,
// falling back to Korean for anything missing.
func NewMessages(lang string) (*Messages, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("console: language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.Korean)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("console: parse %s: %w", name, err)
		}
	}

	return &Messages{
		loc: i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage),
		tag: tag,
	}, nil
}

// Language returns the requested language tag.
func (m *Messages) Language() language.Tag { return m.tag }

// Text returns the message id without template data.
func (m *Messages) Text(id string) string {
	return m.Format(id, nil)
}

// Format renders message id with data. Unknown ids render as the id itself.
func (m *Messages) Format(id string, data map[string]any) string {
	s, err := m.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil && s == "" {
		return id
	}
	return s
}
