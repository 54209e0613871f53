// Package report renders every user-facing and admin-facing message.
// Texts are German, matching the audience of the procurement workflow.
package report

import (
	"fmt"
	"strings"

	"github.com/polkiloo/procurebot/internal/domain/model"
)

// Status glyphs used in search results.
const (
	glyphPending   = "⏳"
	glyphFulfilled = "✅"
	glyphCancelled = "❌"
)

// StatusGlyph maps a fulfillment status to its list marker.
func StatusGlyph(req model.Request) string {
	switch {
	case req.Pending():
		return glyphPending
	case req.Cancelled():
		return glyphCancelled
	default:
		return glyphFulfilled
	}
}

func Greeting(name string) string {
	return fmt.Sprintf("👋 Hallo %s!\n\nIch helfe dir, Bestellanfragen zu erfassen.\n\n📦 1/5: Welcher Artikel?\n\n(/abbrechen zum Beenden)", name)
}

func RestartPrompt() string {
	return "👋 Neue Bestellung:\n\n📦 1/5: Welcher Artikel?\n\n(/abbrechen zum Beenden)"
}

func AskQuantity(article string) string {
	return fmt.Sprintf("✅ Artikel: %s\n\n🔢 2/5: Welche Menge?", article)
}

func AskUrgency(quantity string) string {
	return fmt.Sprintf("✅ Menge: %s\n\n⏰ 3/5: Dringend oder normal?", quantity)
}

func AskCostCenter(urgency string) string {
	return fmt.Sprintf("✅ Dringlichkeit: %s\n\n💰 4/5: Für welche Kostenstelle ist die Bestellung?", urgency)
}

func AskPhoto(costCenter string) string {
	return fmt.Sprintf("✅ Kostenstelle: %s\n\n📸 5/5: Möchtest du ein Foto anhängen?\n\nSende ein Foto oder tippe /weiter um ohne Foto fortzufahren.", costCenter)
}

func PhotoReceived() string {
	return "📸 Foto erhalten!"
}

// Confirmation renders the draft summary shown before submission.
func Confirmation(d model.Draft) string {
	var b strings.Builder
	b.WriteString("📋 Bestellungsübersicht:\n\n")
	fmt.Fprintf(&b, "📦 Artikel: %s\n", d.Article)
	fmt.Fprintf(&b, "🔢 Menge: %s\n", d.Quantity)
	fmt.Fprintf(&b, "⏰ Dringlichkeit: %s\n", d.Urgency)
	fmt.Fprintf(&b, "💰 Kostenstelle: %s", d.CostCenter)
	if d.AttachmentID != "" {
		b.WriteString("\n📸 Foto: Ja")
	}
	b.WriteString("\n\n❓ Ist alles richtig?")
	return b.String()
}

func Submitted(orderNumber string, d model.Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Bestellanfrage %s erfasst!\n\n", orderNumber)
	fmt.Fprintf(&b, "📦 Artikel: %s\n", d.Article)
	fmt.Fprintf(&b, "🔢 Menge: %s\n", d.Quantity)
	fmt.Fprintf(&b, "⏰ Dringlichkeit: %s\n", d.Urgency)
	fmt.Fprintf(&b, "💰 Kostenstelle: %s", d.CostCenter)
	if d.AttachmentID != "" {
		b.WriteString("\n📸 Mit Foto")
	}
	b.WriteString("\n\nDu wirst benachrichtigt, wenn bestellt wurde.\n\n")
	b.WriteString("📋 /meine_bestellungen - Deine offenen Bestellungen\n🆕 /start - Neue Anfrage")
	return b.String()
}

func SaveFailed() string {
	return "❌ Fehler beim Speichern!\n\nBitte versuche es später erneut oder kontaktiere den Administrator.\n\nFür eine neue Anfrage: /start"
}

func Aborted() string {
	return "❌ Anfrage abgebrochen.\n\nFür eine neue Anfrage: /start"
}

// PendingList renders the identity's open requests.
func PendingList(requests []model.Request) string {
	var b strings.Builder
	b.WriteString("📋 Deine offenen Bestellungen:\n\n")
	for _, req := range requests {
		fmt.Fprintf(&b, "%s - %s\n", req.OrderNumber, req.Article)
		fmt.Fprintf(&b, "   Menge: %s | %s\n", req.Quantity, req.Urgency)
		fmt.Fprintf(&b, "   Kostenstelle: %s\n", req.CostCenter)
		fmt.Fprintf(&b, "   Datum: %s\n\n", req.CreatedAtRaw)
	}
	b.WriteString("/stornieren - Bestellung stornieren\n/start - Neue Bestellung")
	return b.String()
}

func NoPending() string {
	return "📋 Du hast keine offenen Bestellungen.\n\n/start - Neue Bestellung aufgeben"
}

func ListFailed() string {
	return "❌ Fehler beim Laden deiner Bestellungen. Bitte versuche es später erneut."
}

// SearchResults renders up to the query layer's result cap, one glyph per status.
func SearchResults(term string, requests []model.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Suchergebnisse für '%s':\n\n", term)
	for _, req := range requests {
		fmt.Fprintf(&b, "%s %s - %s\n", StatusGlyph(req), req.OrderNumber, req.Article)
		fmt.Fprintf(&b, "   %s | %s | %s\n", req.RequesterName, req.Quantity, req.CostCenter)
		fmt.Fprintf(&b, "   %s\n\n", req.CreatedAtRaw)
	}
	return strings.TrimRight(b.String(), "\n")
}

func NoSearchResults(term string) string {
	return fmt.Sprintf("🔍 Keine Ergebnisse für %s\n\nVersuche einen anderen Suchbegriff.", term)
}

func SearchFailed() string {
	return "❌ Fehler bei der Suche. Bitte versuche es später erneut."
}

func SearchUsage() string {
	return "🔍 Bestellungen suchen\n\nVerwendung: /suche Suchbegriff\n\nBeispiele:\n- /suche Druckerpapier\n- /suche IT\n- /suche Max"
}

// Stats renders the weekly aggregate with an unordered cost center breakdown.
func Stats(s model.WeeklyStats) string {
	var b strings.Builder
	b.WriteString("📊 Wochenübersicht\n\n")
	fmt.Fprintf(&b, "📦 Gesamt: %d Bestellungen\n", s.Total)
	fmt.Fprintf(&b, "⏳ Offen: %d\n", s.Pending)
	fmt.Fprintf(&b, "✅ Bestellt: %d\n", s.Fulfilled)
	fmt.Fprintf(&b, "❌ Storniert: %d\n", s.Cancelled)
	if len(s.ByCostCenter) > 0 {
		b.WriteString("\nNach Kostenstelle:\n")
		for cc, count := range s.ByCostCenter {
			fmt.Fprintf(&b, "  %s: %d\n", cc, count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func StatsFailed() string {
	return "Fehler beim Laden der Statistik."
}

func CancelPrompt() string {
	return "🗑️ Welche Bestellung möchtest du stornieren?\n\nWähle eine Bestellung:"
}

func CancelConfirmed(req model.Request) string {
	return fmt.Sprintf("✅ Bestellung %s wurde storniert.\n\n📦 %s x %s\n\n/meine_bestellungen - Offene Bestellungen\n/start - Neue Bestellung",
		req.OrderNumber, req.Article, req.Quantity)
}

func CancelNoPending() string {
	return "📋 Du hast keine offenen Bestellungen zum Stornieren.\n\n/start - Neue Bestellung aufgeben"
}

func CancelAborted() string {
	return "❌ Stornierung abgebrochen."
}

func CancelFailed() string {
	return "❌ Fehler beim Stornieren. Bitte versuche es später erneut."
}

func AdminNewRequest(orderNumber, requester string, d model.Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 Neue Bestellung %s\n\n", orderNumber)
	fmt.Fprintf(&b, "👤 Von: %s\n", requester)
	fmt.Fprintf(&b, "📦 Artikel: %s\n", d.Article)
	fmt.Fprintf(&b, "🔢 Menge: %s\n", d.Quantity)
	fmt.Fprintf(&b, "⏰ Dringlichkeit: %s\n", d.Urgency)
	fmt.Fprintf(&b, "💰 Kostenstelle: %s", d.CostCenter)
	return b.String()
}

func AdminCancelled(req model.Request, by string) string {
	return fmt.Sprintf("🗑️ Bestellung %s STORNIERT\n\n👤 Von: %s\n📦 Artikel: %s\n🔢 Menge: %s",
		req.OrderNumber, by, req.Article, req.Quantity)
}

func AttachmentCaption(orderNumber string) string {
	return fmt.Sprintf("📸 Foto für Bestellung %s", orderNumber)
}

func MyID(identity model.Identity) string {
	return fmt.Sprintf("🔑 Deine Chat-ID: %s\n\nFüge diese in die Umgebung ein:\nADMIN_CHAT_ID=%s", identity, identity)
}

func Help() string {
	return "🤖 Beschaffungs-Bot Hilfe\n\n" +
		"Befehle:\n" +
		"/start - Neue Bestellanfrage starten\n" +
		"/meine_bestellungen - Offene Bestellungen anzeigen\n" +
		"/stornieren - Bestellung stornieren\n" +
		"/suche [Begriff] - Bestellungen suchen\n" +
		"/statistik - Wochenübersicht\n" +
		"/abbrechen - Aktuelle Anfrage abbrechen\n" +
		"/meine_id - Deine Chat-ID anzeigen\n" +
		"/hilfe - Diese Hilfe anzeigen\n\n" +
		"Bei Problemen kontaktiere deinen Administrator."
}
