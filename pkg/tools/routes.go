package tools

import "net/http"

// route maps one tool name to exactly one backend call: a fixed method/path
// pair and a projection of the argument object onto query parameters (GET)
// or a JSON body (everything else).
type route struct {
	method  string
	path    string
	project func(args map[string]any) map[string]any
}

// passthrough forwards the argument object unchanged.
func passthrough(args map[string]any) map[string]any {
	return args
}

// project returns a projection keeping only the listed keys, then filling
// missing ones from defaults. A nil defaults map means plain key filtering.
func project(defaults map[string]any, keys ...string) func(map[string]any) map[string]any {
	return func(args map[string]any) map[string]any {
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			if v, ok := args[k]; ok {
				out[k] = v
			}
		}
		for k, v := range defaults {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
		return out
	}
}

// noParams ignores the argument object entirely.
func noParams(map[string]any) map[string]any {
	return map[string]any{}
}

// memorySearchParams renames query→q and applies the smart-search defaults:
// smart stays on unless the model explicitly turns it off.
func memorySearchParams(args map[string]any) map[string]any {
	out := map[string]any{
		"smart": args["smart"] != false,
		"limit": 5,
	}
	if q, ok := args["query"]; ok {
		out["q"] = q
	}
	if limit, ok := args["limit"]; ok {
		out["limit"] = limit
	}
	return out
}

// contactSearchParams renames query→q with a result cap.
func contactSearchParams(args map[string]any) map[string]any {
	out := map[string]any{"limit": 10}
	if q, ok := args["query"]; ok {
		out["q"] = q
	}
	if limit, ok := args["limit"]; ok {
		out["limit"] = limit
	}
	return out
}

// routes is the dispatch table: tool name → backend call. Unknown names fall
// through to a structured error in the dispatcher, recoverable per-call.
var routes = map[string]route{
	// Gmail
	"search_gmail": {http.MethodPost, "/api/gmail-direct-search",
		project(map[string]any{"search": "", "days": 7, "limit": 10}, "search", "days", "limit")},
	"send_email": {http.MethodPost, "/api/gmail/send",
		project(nil, "to", "subject", "body")},

	// Calendar
	"get_calendar_events": {http.MethodGet, "/api/calendar/events",
		project(map[string]any{"days": 7}, "days")},
	"create_calendar_event": {http.MethodPost, "/api/calendar/create", passthrough},
	"update_calendar_event": {http.MethodPost, "/api/calendar/update", passthrough},
	"delete_calendar_event": {http.MethodPost, "/api/calendar/delete", project(nil, "eventId")},

	// Todos
	"get_todos":   {http.MethodGet, "/api/todos", project(nil, "status", "limit")},
	"create_todo": {http.MethodPost, "/api/todos", passthrough},
	"update_todo": {http.MethodPost, "/api/todos/update", passthrough},
	"delete_todo": {http.MethodPost, "/api/todos/delete", project(nil, "id")},

	// Memory
	"search_memory": {http.MethodGet, "/api/memory-search", memorySearchParams},
	"store_memory":  {http.MethodPost, "/api/memory-store", passthrough},

	// Receipts
	"receipt_ocr":     {http.MethodPost, "/api/receipt-ocr", passthrough},
	"vendor_spending": {http.MethodGet, "/api/vendor-spending", project(nil, "vendor", "months")},
	"receipt_analytics": {http.MethodGet, "/api/receipt-analytics",
		project(map[string]any{"days": 30}, "days")},

	// Subscriptions
	"get_subscriptions":   {http.MethodGet, "/api/subscriptions", project(nil, "active")},
	"update_subscription": {http.MethodPost, "/api/subscriptions/update", passthrough},

	// File storage (Dropbox-backed)
	"list_files":    {http.MethodGet, "/api/dropbox/list", project(map[string]any{"path": ""}, "path")},
	"upload_file":   {http.MethodPost, "/api/dropbox/upload", passthrough},
	"download_file": {http.MethodPost, "/api/dropbox/download", project(nil, "path")},
	"copy_file":     {http.MethodPost, "/api/dropbox/copy", passthrough},
	"extract_receipts_from_emails": {http.MethodPost, "/api/extract-receipts",
		project(map[string]any{"days": 7}, "days")},

	// User context
	"get_user_context_summary":       {http.MethodGet, "/api/user-context-summary", noParams},
	"save_insight_from_conversation": {http.MethodPost, "/api/save-insight", passthrough},
	"update_user_context":            {http.MethodPost, "/api/update-context", passthrough},

	// Contacts
	"search_contacts": {http.MethodGet, "/api/contacts/search", contactSearchParams},
	"update_contact":  {http.MethodPost, "/api/contacts/update", passthrough},

	// Health
	"get_health_today":   {http.MethodGet, "/api/health-today", noParams},
	"update_health_data": {http.MethodPost, "/api/update-health", passthrough},
	"view_health_trends": {http.MethodGet, "/api/health-trends",
		project(map[string]any{"days": 30}, "days")},

	// Daily operations
	"get_daily_briefing": {http.MethodGet, "/api/daily-briefing", noParams},
	"trigger_sync":       {http.MethodPost, "/api/trigger-sync", noParams},
}
