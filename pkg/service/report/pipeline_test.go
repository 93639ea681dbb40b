package report_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/service/report"
)

func testRow(t *testing.T, id, title string, created time.Time, status, classification, tierQueue string) report.Row {
	t.Helper()
	inc, err := model.NewIncident(types.IncidentID(id), title, created, status)
	gt.NoError(t, err)
	inc.Classification = classification
	inc.TierQueue = tierQueue
	return report.Row{Incident: inc}
}

func rowIDs(rows []report.Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.Incident.ID.String()
	}
	return ids
}

func TestFilterRows(t *testing.T) {
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	rows := []report.Row{
		testRow(t, "101", "Mail outage", base, "Active", "Network", "Tier 1"),
		testRow(t, "102", "VPN flapping", base, "Active", "NETWORKING", "Tier 2"),
		testRow(t, "103", "Broken laptop", base, "Active", "Hardware", "Tier 1"),
		testRow(t, "104", "Unlabeled ticket", base, "Active", "", ""),
	}

	t.Run("empty filter keeps every row", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{})
		gt.NoError(t, err)
		gt.Equal(t, rowIDs(got), []string{"101", "102", "103", "104"})
	})

	t.Run("classification wildcard is case-insensitive", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{Classification: "net*"})
		gt.NoError(t, err)
		gt.Equal(t, rowIDs(got), []string{"101", "102"})
	})

	t.Run("single character wildcard", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{TierQueue: "tier ?"})
		gt.NoError(t, err)
		gt.Equal(t, rowIDs(got), []string{"101", "102", "103"})
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{
			Classification: "net*",
			TierQueue:      "tier 1",
		})
		gt.NoError(t, err)
		gt.Equal(t, rowIDs(got), []string{"101"})
	})

	t.Run("empty field never matches a pattern", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{Classification: "*"})
		gt.NoError(t, err)
		gt.Equal(t, rowIDs(got), []string{"101", "102", "103"})
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got, err := report.FilterRows(rows, report.Filter{Classification: "printer*"})
		gt.NoError(t, err)
		gt.A(t, got).Length(0)
	})

	t.Run("broken pattern is rejected", func(t *testing.T) {
		_, err := report.FilterRows(rows, report.Filter{Classification: "[net"})
		gt.Error(t, err)
	})
}

func TestSortRows(t *testing.T) {
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	t.Run("numeric IDs sort by value", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "110", "c", base, "Active", "", ""),
			testRow(t, "9", "a", base, "Active", "", ""),
			testRow(t, "25", "b", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByID, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"9", "25", "110"})
	})

	t.Run("non-numeric IDs sort lexicographically", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "IR9", "a", base, "Active", "", ""),
			testRow(t, "IR10", "b", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByID, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"IR10", "IR9"})
	})

	t.Run("mixed ID shapes keep one stable order", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "1Z", "a", base, "Active", "", ""),
			testRow(t, "10", "b", base, "Active", "", ""),
			testRow(t, "9", "c", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByID, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"9", "10", "1Z"})

		gt.NoError(t, report.SortRows(rows, types.SortByID, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"9", "10", "1Z"})
	})

	t.Run("created date descending", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "1", "a", base.Add(time.Hour), "Active", "", ""),
			testRow(t, "2", "b", base.Add(3*time.Hour), "Active", "", ""),
			testRow(t, "3", "c", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByCreatedDate, types.OrderDescending))
		gt.Equal(t, rowIDs(rows), []string{"2", "1", "3"})
	})

	t.Run("title ascending", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "1", "Printer jam", base, "Active", "", ""),
			testRow(t, "2", "Account lockout", base, "Active", "", ""),
			testRow(t, "3", "Mail outage", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByTitle, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"2", "3", "1"})
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "7", "Same title", base, "Active", "", ""),
			testRow(t, "3", "Same title", base, "Active", "", ""),
			testRow(t, "5", "Same title", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByTitle, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), []string{"7", "3", "5"})
	})

	t.Run("sorting twice changes nothing", func(t *testing.T) {
		rows := []report.Row{
			testRow(t, "2", "b", base.Add(time.Hour), "Active", "", ""),
			testRow(t, "1", "a", base.Add(time.Hour), "Active", "", ""),
			testRow(t, "3", "c", base, "Active", "", ""),
		}
		gt.NoError(t, report.SortRows(rows, types.SortByCreatedDate, types.OrderAscending))
		once := rowIDs(rows)
		gt.NoError(t, report.SortRows(rows, types.SortByCreatedDate, types.OrderAscending))
		gt.Equal(t, rowIDs(rows), once)
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		rows := []report.Row{testRow(t, "1", "a", base, "Active", "", "")}
		gt.Error(t, report.SortRows(rows, types.SortKey("severity"), types.OrderAscending))
	})

	t.Run("unknown sort order is rejected", func(t *testing.T) {
		rows := []report.Row{testRow(t, "1", "a", base, "Active", "", "")}
		gt.Error(t, report.SortRows(rows, types.SortByID, types.SortOrder("upward")))
	})
}
