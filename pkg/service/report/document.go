package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/service/i18n"
	"github.com/secmon-lab/argus/pkg/service/report/assets"
)

// headerColumns is the column order of the table. The toggle column precedes
// them and carries no header label.
var headerColumns = []i18n.Key{
	i18n.KeyColID,
	i18n.KeyColTitle,
	i18n.KeyColAffectedUser,
	i18n.KeyColAssignedTo,
	i18n.KeyColCreated,
	i18n.KeyColStatus,
	i18n.KeyColClassification,
	i18n.KeyColTierQueue,
	i18n.KeyColRelated,
}

// filterControls maps each dropdown to the element ID the client script
// populates. Order here is the order in the toolbar.
var filterControls = []struct {
	label i18n.Key
	id    string
}{
	{i18n.KeyColClassification, "filter-classification"},
	{i18n.KeyColAffectedUser, "filter-affected-user"},
	{i18n.KeyColAssignedTo, "filter-assigned-to"},
	{i18n.KeyColTierQueue, "filter-tier-queue"},
}

// RenderDocument assembles the complete artifact: one HTML document with the
// stylesheet, labels, rows, and client script inlined so the file needs no
// companion assets. Rows are rendered in the order given; filter and sort
// first. An empty title falls back to the localized default heading.
func (r *Renderer) RenderDocument(rows []Row, title string, reportID types.ReportID) (string, error) {
	for _, row := range rows {
		if row.Incident == nil {
			return "", goerr.New("row without incident", goerr.V("report_id", reportID))
		}
	}

	if title == "" {
		title = r.loc.Text(i18n.KeyReportTitle)
	}
	generatedAt := r.clock().Format(timestampFormat)

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", html.EscapeString(string(r.loc.Lang())))
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<meta name=\"argus-report-id\" content=\"%s\">\n", html.EscapeString(reportID.String()))
	fmt.Fprintf(&b, "<title>%s (%d)</title>\n", html.EscapeString(title), len(rows))
	b.WriteString("<style>\n")
	b.WriteString(assets.StyleCSS)
	b.WriteString("</style>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<header>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<p class=\"summary\">%s. %s %s</p>\n",
		html.EscapeString(r.loc.Textf(i18n.KeySummaryCount, len(rows))),
		html.EscapeString(r.loc.Text(i18n.KeyGeneratedAt)),
		generatedAt)
	b.WriteString("</header>\n")

	fmt.Fprintf(&b, "<section class=\"toolbar\" aria-label=\"%s\">\n",
		html.EscapeString(r.loc.Text(i18n.KeyFilterHeading)))
	for _, fc := range filterControls {
		fmt.Fprintf(&b, "<label>%s<select id=\"%s\"></select></label>\n",
			html.EscapeString(r.loc.Text(fc.label)), fc.id)
	}
	fmt.Fprintf(&b, "<button type=\"button\" id=\"expand-all\">%s</button>\n",
		html.EscapeString(r.loc.Text(i18n.KeyExpandAll)))
	fmt.Fprintf(&b, "<button type=\"button\" id=\"collapse-all\">%s</button>\n",
		html.EscapeString(r.loc.Text(i18n.KeyCollapseAll)))
	b.WriteString("</section>\n")

	b.WriteString("<table>\n<thead>\n<tr>\n")
	b.WriteString("<th class=\"col-toggle\"></th>\n")
	for _, key := range headerColumns {
		fmt.Fprintf(&b, "<th>%s</th>\n", html.EscapeString(r.loc.Text(key)))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range rows {
		r.renderRow(&b, row)
	}
	b.WriteString("</tbody>\n</table>\n")

	b.WriteString("<script>\n")
	b.WriteString(r.clientScript())
	b.WriteString("</script>\n")
	b.WriteString("</body>\n</html>\n")

	return b.String(), nil
}

// clientScript injects the language tag and the localized sentinel label into
// the embedded script. Values go in as JSON string literals, which also
// escapes anything that could terminate the inline script block.
func (r *Renderer) clientScript() string {
	return strings.NewReplacer(
		"__ARGUS_LANG__", jsString(string(r.loc.Lang())),
		"__ARGUS_SHOW_ALL__", jsString(r.loc.Text(i18n.KeyShowAll)),
	).Replace(assets.ScriptJS)
}

func jsString(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(encoded)
}
