package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/secmon-lab/argus/pkg/service/i18n"
)

// columnCount is the number of table columns including the toggle column.
// The detail cell spans all of them.
const columnCount = 10

// timestampFormat is minute precision, shared by the created column and the
// generation timestamp.
const timestampFormat = "2006-01-02 15:04"

// Status colors are keyed by the canonical status names and written as inline
// hex values, so the same record gets the same color no matter which language
// the report was generated in. Unrecognized statuses fall back to the same
// amber as active work.
var statusColors = map[string]string{
	"Active":   "#d9a741",
	"Resolved": "#2e8b57",
	"Closed":   "#8a8a8a",
}

const statusColorFallback = "#d9a741"

func statusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return statusColorFallback
}

// renderRow writes one master row and its detail row. The detail row must
// immediately follow its master; the client script walks nextElementSibling
// to pair them. Every record value passes through html.EscapeString,
// including the data attributes the filters read.
func (r *Renderer) renderRow(b *strings.Builder, row Row) {
	inc := row.Incident
	rel := row.Relations

	id := html.EscapeString(inc.ID.String())
	title := html.EscapeString(inc.Title)
	affectedUser := html.EscapeString(rel.AffectedUser)
	assignedTo := html.EscapeString(rel.AssignedTo)
	created := inc.CreatedAt.Format(timestampFormat)
	status := html.EscapeString(inc.Status)
	classification := html.EscapeString(inc.Classification)
	tierQueue := html.EscapeString(inc.TierQueue)

	pillClass := "pill"
	if rel.RelatedCount == 0 {
		pillClass = "pill zero"
	}

	fmt.Fprintf(b, "<tr class=\"incident-row\" data-classification=\"%s\" data-affected-user=\"%s\" data-assigned-to=\"%s\" data-tier-queue=\"%s\">\n",
		classification, affectedUser, assignedTo, tierQueue)
	fmt.Fprintf(b, "<td class=\"col-toggle\"><button type=\"button\" class=\"toggle\" aria-expanded=\"false\" aria-label=\"%s\">+</button></td>\n",
		html.EscapeString(r.loc.Text(i18n.KeyToggleDetails)))
	fmt.Fprintf(b, "<td>%s</td>\n", id)
	fmt.Fprintf(b, "<td>%s</td>\n", title)
	fmt.Fprintf(b, "<td>%s</td>\n", affectedUser)
	fmt.Fprintf(b, "<td>%s</td>\n", assignedTo)
	fmt.Fprintf(b, "<td>%s</td>\n", created)
	fmt.Fprintf(b, "<td><span class=\"status-badge\" style=\"background-color:%s\">%s</span></td>\n",
		statusColor(inc.Status), status)
	fmt.Fprintf(b, "<td>%s</td>\n", classification)
	fmt.Fprintf(b, "<td>%s</td>\n", tierQueue)
	fmt.Fprintf(b, "<td><span class=\"%s\">%d</span></td>\n", pillClass, rel.RelatedCount)
	b.WriteString("</tr>\n")

	fmt.Fprintf(b, "<tr class=\"detail-row\"><td colspan=\"%d\">\n", columnCount)
	fmt.Fprintf(b, "<dl class=\"detail-list\" aria-label=\"%s\">\n",
		html.EscapeString(r.loc.Text(i18n.KeyDetails)))

	detail := func(key i18n.Key, value string) {
		fmt.Fprintf(b, "<dt>%s</dt><dd>%s</dd>\n", html.EscapeString(r.loc.Text(key)), value)
	}
	detail(i18n.KeyColID, id)
	detail(i18n.KeyColTitle, title)
	detail(i18n.KeyColAffectedUser, affectedUser)
	detail(i18n.KeyColAssignedTo, assignedTo)
	detail(i18n.KeyColCreated, created)
	detail(i18n.KeyColStatus, status)
	detail(i18n.KeyColClassification, classification)
	detail(i18n.KeyColTierQueue, tierQueue)
	detail(i18n.KeyColRelated, fmt.Sprintf("%d", rel.RelatedCount))

	b.WriteString("</dl>\n</td></tr>\n")
}
