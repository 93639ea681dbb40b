package i18n

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Key names one localizable label of the report
type Key string

// Every label the report renders. A catalog must carry all of them for every
// supported language; Validate enforces that before any rendering starts.
const (
	KeyReportTitle       Key = "report.title"     // Default heading when the run requests none
	KeySummaryCount      Key = "report.summary"   // Summary sentence pattern, carries one %d verb
	KeyGeneratedAt       Key = "report.generated" // Prefix of the generation timestamp
	KeyColID             Key = "column.id"
	KeyColTitle          Key = "column.title"
	KeyColAffectedUser   Key = "column.affected_user"
	KeyColAssignedTo     Key = "column.assigned_to"
	KeyColCreated        Key = "column.created"
	KeyColStatus         Key = "column.status"
	KeyColClassification Key = "column.classification"
	KeyColTierQueue      Key = "column.tier_queue"
	KeyColRelated        Key = "column.related"
	KeyFilterHeading     Key = "filter.heading"
	KeyShowAll           Key = "filter.show_all" // Sentinel option of every filter dropdown
	KeyExpandAll         Key = "action.expand_all"
	KeyCollapseAll       Key = "action.collapse_all"
	KeyToggleDetails     Key = "action.toggle" // Accessible label of the per-row toggle
	KeyDetails           Key = "detail.heading"
)

// allKeys is the authoritative key set in declaration order
var allKeys = []Key{
	KeyReportTitle,
	KeySummaryCount,
	KeyGeneratedAt,
	KeyColID,
	KeyColTitle,
	KeyColAffectedUser,
	KeyColAssignedTo,
	KeyColCreated,
	KeyColStatus,
	KeyColClassification,
	KeyColTierQueue,
	KeyColRelated,
	KeyFilterHeading,
	KeyShowAll,
	KeyExpandAll,
	KeyCollapseAll,
	KeyToggleDetails,
	KeyDetails,
}

// Keys returns every key a complete catalog carries
func Keys() []Key {
	keys := make([]Key, len(allKeys))
	copy(keys, allKeys)
	return keys
}

func builtinEntries() map[Key]map[types.LanguageTag]string {
	sv, en := types.LangSwedish, types.LangEnglish
	return map[Key]map[types.LanguageTag]string{
		KeyReportTitle:       {sv: "Öppna incidenter", en: "Open Incidents"},
		KeySummaryCount:      {sv: "Totalt %d incidenter", en: "Total of %d incidents"},
		KeyGeneratedAt:       {sv: "Genererad", en: "Generated"},
		KeyColID:             {sv: "ID", en: "ID"},
		KeyColTitle:          {sv: "Rubrik", en: "Title"},
		KeyColAffectedUser:   {sv: "Berörd användare", en: "Affected user"},
		KeyColAssignedTo:     {sv: "Tilldelad", en: "Assigned to"},
		KeyColCreated:        {sv: "Skapad", en: "Created"},
		KeyColStatus:         {sv: "Status", en: "Status"},
		KeyColClassification: {sv: "Klassificering", en: "Classification"},
		KeyColTierQueue:      {sv: "Supportgrupp", en: "Support group"},
		KeyColRelated:        {sv: "Relaterade objekt", en: "Related items"},
		KeyFilterHeading:     {sv: "Filtrera", en: "Filter"},
		KeyShowAll:           {sv: "Visa alla", en: "Show all"},
		KeyExpandAll:         {sv: "Expandera alla", en: "Expand all"},
		KeyCollapseAll:       {sv: "Fäll ihop alla", en: "Collapse all"},
		KeyToggleDetails:     {sv: "Visa eller dölj detaljer", en: "Show or hide details"},
		KeyDetails:           {sv: "Detaljer", en: "Details"},
	}
}

// Catalog holds every report label keyed by label key and language
type Catalog struct {
	entries map[Key]map[types.LanguageTag]string
}

// New returns a catalog preloaded with the builtin labels
func New() *Catalog {
	return &Catalog{entries: builtinEntries()}
}

// Lookup resolves one label. A key or language the catalog does not carry is
// a configuration defect and wraps ErrUnknownLabelKey.
func (c *Catalog) Lookup(key Key, lang types.LanguageTag) (string, error) {
	langs, ok := c.entries[key]
	if !ok {
		return "", goerr.Wrap(model.ErrUnknownLabelKey, "no such label key",
			goerr.V("key", key))
	}
	label, ok := langs[lang]
	if !ok {
		return "", goerr.Wrap(model.ErrUnknownLabelKey, "label key missing for language",
			goerr.V("key", key),
			goerr.V("language", lang))
	}
	return label, nil
}

// Merge overlays label values, e.g. from an override file. Keys must already
// exist in the catalog and languages must be supported; anything else is
// treated as a typo and rejected. The merged catalog is re-validated.
func (c *Catalog) Merge(overrides map[string]map[string]string) error {
	for rawKey, langs := range overrides {
		key := Key(rawKey)
		if _, ok := c.entries[key]; !ok {
			return goerr.Wrap(model.ErrUnknownLabelKey, "override references unknown label key",
				goerr.V("key", rawKey))
		}
		for rawLang, label := range langs {
			lang := types.LanguageTag(rawLang)
			if err := lang.Validate(); err != nil {
				return goerr.Wrap(err, "override references unsupported language",
					goerr.V("key", rawKey))
			}
			c.entries[key][lang] = label
		}
	}
	return c.Validate()
}

// Validate checks that every key carries a non-empty label for every
// supported language.
func (c *Catalog) Validate() error {
	for _, key := range allKeys {
		for _, lang := range types.SupportedLanguages() {
			label, err := c.Lookup(key, lang)
			if err != nil {
				return err
			}
			if label == "" {
				return goerr.Wrap(model.ErrUnknownLabelKey, "empty label",
					goerr.V("key", key),
					goerr.V("language", lang))
			}
		}
	}
	return nil
}

// Localizer binds the catalog to one language
func (c *Catalog) Localizer(lang types.LanguageTag) (*Localizer, error) {
	if err := lang.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Localizer{catalog: c, lang: lang}, nil
}

// Localizer resolves labels for a fixed language
type Localizer struct {
	catalog *Catalog
	lang    types.LanguageTag
}

// Lang returns the bound language
func (l *Localizer) Lang() types.LanguageTag {
	return l.lang
}

// Text resolves one label. The catalog was validated when the Localizer was
// built, so every known key resolves; should a lookup miss regardless, the
// key literal is returned so the defect stays visible in the artifact.
func (l *Localizer) Text(key Key) string {
	label, err := l.catalog.Lookup(key, l.lang)
	if err != nil {
		return string(key)
	}
	return label
}

// Textf resolves a pattern label and applies fmt-style substitution
func (l *Localizer) Textf(key Key, args ...any) string {
	return fmt.Sprintf(l.Text(key), args...)
}
