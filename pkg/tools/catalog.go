package tools

import (
	"encoding/json"

	"github.com/quantshow/assistant-gateway/pkg/models"
)

// schema builds a JSON-schema object parameter spec. Map marshaling sorts
// keys, so the output is deterministic.
func schema(properties map[string]any, required ...string) json.RawMessage {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	b, err := json.Marshal(s)
	if err != nil {
		panic(err) // static catalog, marshal cannot fail
	}
	return b
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}

func propEnum(description string, values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values, "description": description}
}

func tool(name, description string, parameters json.RawMessage) models.ToolDefinition {
	return models.ToolDefinition{
		Type: "function",
		Function: models.ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// catalog is the fixed tool set passed verbatim to the provider on every
// call. Configuration, not computed state; descriptions follow the assistant
// persona's language.
var catalog = []models.ToolDefinition{
	// Gmail
	tool("search_gmail",
		"Sök i Gmail. Hämta senaste mail, filtrera efter avsändare/ämne, hitta specifika meddelanden.",
		schema(map[string]any{
			"search": prop("string", `Sökterm, eller "from:email" eller "subject:text"`),
			"days":   prop("number", "Hur många dagar bakåt (default: 7)"),
			"limit":  prop("number", "Max antal mail (default: 10)"),
		})),
	tool("send_email",
		"Skicka email från Gmail-kontot",
		schema(map[string]any{
			"to":      prop("string", "Mottagarens email"),
			"subject": prop("string", "Email ämne"),
			"body":    prop("string", "Email innehåll"),
		}, "to", "subject", "body")),

	// Calendar
	tool("get_calendar_events",
		"Hämta kalenderhändelser. Se vad som är bokat idag, i veckan, eller längre fram.",
		schema(map[string]any{
			"days": prop("number", "Hur många dagar framåt (default: 7)"),
		})),
	tool("create_calendar_event",
		"Skapa ny kalenderhändelse",
		schema(map[string]any{
			"summary":     prop("string", "Händelsens titel"),
			"description": prop("string", "Beskrivning (optional)"),
			"start":       prop("string", "Starttid ISO format"),
			"end":         prop("string", "Sluttid ISO format"),
			"location":    prop("string", "Plats (optional)"),
		}, "summary", "start", "end")),
	tool("update_calendar_event",
		"Uppdatera befintlig kalenderhändelse",
		schema(map[string]any{
			"eventId": prop("string", "Event ID"),
			"summary": prop("string", "Ny titel"),
			"start":   prop("string", "Ny starttid"),
			"end":     prop("string", "Ny sluttid"),
		}, "eventId")),
	tool("delete_calendar_event",
		"Ta bort kalenderhändelse",
		schema(map[string]any{
			"eventId": prop("string", "Event ID att ta bort"),
		}, "eventId")),

	// Todos
	tool("get_todos",
		"Hämta todos/uppgifter. Filtrera efter status.",
		schema(map[string]any{
			"status": propEnum("Filtrera efter status", "pending", "completed"),
			"limit":  prop("number", "Max antal todos"),
		})),
	tool("create_todo",
		"Skapa ny todo",
		schema(map[string]any{
			"title":       prop("string", "Todo titel"),
			"description": prop("string", "Beskrivning"),
			"importance":  prop("number", "Viktighet 1-5"),
			"deadline":    prop("string", "Deadline ISO format"),
		}, "title")),
	tool("update_todo",
		"Uppdatera befintlig todo",
		schema(map[string]any{
			"id":         prop("string", "Todo ID"),
			"title":      prop("string", "Ny titel"),
			"status":     propEnum("Ny status", "pending", "completed"),
			"importance": prop("number", "Ny viktighet"),
		}, "id")),
	tool("delete_todo",
		"Ta bort todo",
		schema(map[string]any{
			"id": prop("string", "Todo ID att ta bort"),
		}, "id")),

	// Memory
	tool("search_memory",
		"Sök i smartminnet. Hitta tidigare info om projekt, personer, idéer.",
		schema(map[string]any{
			"query": prop("string", "Sökterm"),
			"smart": prop("boolean", "Smart sökning (default: true)"),
			"limit": prop("number", "Max resultat (default: 5)"),
		}, "query")),
	tool("store_memory",
		"Spara nytt minne i smartminnet",
		schema(map[string]any{
			"content":  prop("string", "Innehåll att spara"),
			"type":     propEnum("Typ av minne", "email", "calendar", "todo", "note", "receipt"),
			"metadata": prop("object", "Extra metadata"),
		}, "content", "type")),

	// Receipts
	tool("receipt_ocr",
		"OCR-scanna ett kvitto och extrahera data",
		schema(map[string]any{
			"filePath": prop("string", "Sökväg till kvitto i filarkivet"),
		}, "filePath")),
	tool("vendor_spending",
		"Se utgifter per leverantör/butik",
		schema(map[string]any{
			"vendor": prop("string", "Leverantörsnamn (optional)"),
			"months": prop("number", "Antal månader bakåt"),
		})),
	tool("receipt_analytics",
		"Få analyser av kvitton - totalkostnad, kategorier, trender",
		schema(map[string]any{
			"days": prop("number", "Antal dagar bakåt (default: 30)"),
		})),

	// Subscriptions
	tool("get_subscriptions",
		"Hämta prenumerationer och återkommande kostnader",
		schema(map[string]any{
			"active": prop("boolean", "Visa bara aktiva"),
		})),
	tool("update_subscription",
		"Uppdatera prenumeration (t.ex. säga upp eller ändra kostnad)",
		schema(map[string]any{
			"id":     prop("string", "Subscription ID"),
			"status": propEnum("Ny status", "active", "cancelled"),
			"cost":   prop("number", "Ny kostnad"),
		}, "id")),

	// File storage
	tool("list_files",
		"Lista filer i filarkivet",
		schema(map[string]any{
			"path": prop("string", "Sökväg (default: rot)"),
		})),
	tool("upload_file",
		"Ladda upp fil till filarkivet",
		schema(map[string]any{
			"path":    prop("string", "Destinationssökväg"),
			"content": prop("string", "Filinnehåll"),
		}, "path", "content")),
	tool("download_file",
		"Ladda ner fil från filarkivet",
		schema(map[string]any{
			"path": prop("string", "Filsökväg"),
		}, "path")),
	tool("copy_file",
		"Kopiera filer i filarkivet",
		schema(map[string]any{
			"fromPath": prop("string", "Från-sökväg"),
			"toPath":   prop("string", "Till-sökväg"),
		}, "fromPath", "toPath")),
	tool("extract_receipts_from_emails",
		"Extrahera kvitton från mail och processa dem",
		schema(map[string]any{
			"days": prop("number", "Hur många dagar bakåt (default: 7)"),
		})),

	// User context
	tool("get_user_context_summary",
		"Hämta användarens fullständiga kontext (core/current/recent)",
		schema(map[string]any{})),
	tool("save_insight_from_conversation",
		"Spara viktig insikt från konversationen",
		schema(map[string]any{
			"insight":    prop("string", "Insikten att spara"),
			"importance": prop("number", "Viktighet 1-5"),
		}, "insight")),
	tool("update_user_context",
		"Uppdatera användarens kontext (current layer)",
		schema(map[string]any{
			"section": prop("string", "Sektion att uppdatera (projects/economy)"),
			"content": prop("string", "Nytt innehåll"),
		}, "section", "content")),

	// Contacts
	tool("search_contacts",
		"Sök bland kontakter på namn eller email",
		schema(map[string]any{
			"query": prop("string", "Sökterm"),
			"limit": prop("number", "Max antal (default: 10)"),
		}, "query")),
	tool("update_contact",
		"Uppdatera eller lägg till en kontakt",
		schema(map[string]any{
			"name":  prop("string", "Kontaktens namn"),
			"email": prop("string", "Email"),
			"notes": prop("string", "Anteckningar"),
		}, "name")),

	// Health
	tool("get_health_today",
		"Hämta dagens mående (mood/energy/stress)",
		schema(map[string]any{})),
	tool("update_health_data",
		"Uppdatera daglig hälsodata",
		schema(map[string]any{
			"mood":   prop("number", "Humör 1-10"),
			"energy": prop("number", "Energi 1-10"),
			"stress": prop("number", "Stress 1-10"),
		})),
	tool("view_health_trends",
		"Få hälsotrender över tid",
		schema(map[string]any{
			"days": prop("number", "Antal dagar (default: 30)"),
		})),

	// Daily operations
	tool("get_daily_briefing",
		"Få komplett daglig briefing (kalender + mail + todos + kontext)",
		schema(map[string]any{})),
	tool("trigger_sync",
		"Starta manuell sync av Gmail + Calendar + Cleanup",
		schema(map[string]any{})),
}

// Catalog returns the fixed tool descriptor list. Callers must treat it as
// read-only.
func Catalog() []models.ToolDefinition {
	return catalog
}
