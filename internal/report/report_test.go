package report

import (
	"strings"
	"testing"

	"github.com/polkiloo/procurebot/internal/domain/model"
)

func TestStatusGlyph(t *testing.T) {
	cases := []struct {
		name   string
		status string
		want   string
	}{
		{"pending", model.StatusPending, glyphPending},
		{"cancelled", model.StatusCancelled, glyphCancelled},
		{"fulfilled", "bestellt 12.05.", glyphFulfilled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusGlyph(model.Request{Status: tc.status}); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestConfirmationMentionsPhotoOnlyWhenAttached(t *testing.T) {
	d := model.Draft{Article: "Toner", Quantity: "2", Urgency: "Normal", CostCenter: "Lager"}

	if msg := Confirmation(d); strings.Contains(msg, "Foto") {
		t.Fatalf("confirmation without attachment must not mention a photo: %q", msg)
	}

	d.AttachmentID = "file-123"
	if msg := Confirmation(d); !strings.Contains(msg, "📸 Foto: Ja") {
		t.Fatalf("confirmation with attachment must mention the photo: %q", msg)
	}
}

func TestSubmittedContainsOrderNumberAndFields(t *testing.T) {
	d := model.Draft{Article: "Toner", Quantity: "2", Urgency: "Normal", CostCenter: "Lager"}
	msg := Submitted("#042", d)

	for _, want := range []string{"#042", "Toner", "2", "Normal", "Lager", "/meine_bestellungen"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in submit confirmation: %q", want, msg)
		}
	}
}

func TestPendingListRendersEveryRequest(t *testing.T) {
	requests := []model.Request{
		{OrderNumber: "#001", Article: "Toner", Quantity: "2", Urgency: "Normal", CostCenter: "Lager", CreatedAtRaw: "2025-03-17 09:00:00"},
		{OrderNumber: "#003", Article: "Papier", Quantity: "5", Urgency: "Dringend", CostCenter: "HR", CreatedAtRaw: "2025-03-18 10:00:00"},
	}

	msg := PendingList(requests)
	for _, want := range []string{"#001", "#003", "Toner", "Papier", "/stornieren"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in pending list: %q", want, msg)
		}
	}
}

func TestSearchResultsCarryGlyphs(t *testing.T) {
	requests := []model.Request{
		{OrderNumber: "#001", Article: "Toner", Status: model.StatusPending},
		{OrderNumber: "#002", Article: "Papier", Status: model.StatusCancelled},
		{OrderNumber: "#003", Article: "Stifte", Status: "bestellt"},
	}

	msg := SearchResults("a", requests)
	for _, glyph := range []string{glyphPending, glyphCancelled, glyphFulfilled} {
		if !strings.Contains(msg, glyph) {
			t.Fatalf("expected glyph %s in results: %q", glyph, msg)
		}
	}
}

func TestStatsIncludesBreakdown(t *testing.T) {
	stats := model.WeeklyStats{
		Total: 6, Pending: 3, Fulfilled: 2, Cancelled: 1,
		ByCostCenter: map[string]int{"Lager": 4, "HR": 2},
	}

	msg := Stats(stats)
	for _, want := range []string{"Gesamt: 6", "Offen: 3", "Bestellt: 2", "Storniert: 1", "Lager: 4", "HR: 2"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in stats: %q", want, msg)
		}
	}
}

func TestStatsWithoutBreakdownOmitsSection(t *testing.T) {
	msg := Stats(model.WeeklyStats{})
	if strings.Contains(msg, "Kostenstelle") {
		t.Fatalf("empty breakdown must be omitted: %q", msg)
	}
}

func TestAdminMessages(t *testing.T) {
	d := model.Draft{Article: "Toner", Quantity: "2", Urgency: "Normal", CostCenter: "Lager"}
	if msg := AdminNewRequest("#007", "Max Muster", d); !strings.Contains(msg, "#007") || !strings.Contains(msg, "Max Muster") {
		t.Fatalf("unexpected admin message: %q", msg)
	}

	req := model.Request{OrderNumber: "#007", Article: "Toner", Quantity: "2"}
	if msg := AdminCancelled(req, "Max"); !strings.Contains(msg, "STORNIERT") || !strings.Contains(msg, "#007") {
		t.Fatalf("unexpected cancel notice: %q", msg)
	}
}
