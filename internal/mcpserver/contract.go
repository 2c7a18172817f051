package mcpserver

// DashboardFormatContract describes the canonical dashboard document shape
// that LLM consumers should follow when importing or constructing payloads.
const DashboardFormatContract = `# Tessera Dashboard Format Contract

Every dashboard document stored in Tessera MUST follow this structure.

## Document

` + "```" + `json
{
  "version": "0.0.3",
  "cards": [
    {
      "id": "uuid-or-slug",
      "title": "Card title",
      "color": "blue-500",
      "order": 0,
      "links": [
        {
          "id": "uuid-or-slug",
          "title": "Link title",
          "url": "https://example.com",
          "icon": "link",
          "color": "blue-500",
          "order": 0
        }
      ]
    }
  ]
}
` + "```" + `

## Rules

1. **Orders are dense.** Card orders are exactly 0..n-1 with no gaps or
   duplicates; link orders within each card likewise. Arrays are sorted by
   their order field.
2. **Colors** are Tailwind tokens of the form ` + "`" + `<family>-<shade>` + "`" + ` where the
   shade is one of 300, 400, 500, 600, 700 (e.g. ` + "`" + `emerald-500` + "`" + `). Legacy bare
   family names (e.g. ` + "`" + `green` + "`" + `) are migrated to ` + "`" + `<family>-500` + "`" + ` on load;
   unknown families fall back to ` + "`" + `blue-500` + "`" + `.
3. **Icons** are Lucide icon names from the built-in registry (the
   ` + "`" + `get_dashboard_contract` + "`" + ` tool lists the document shape, the HTTP
   ` + "`" + `/api/icons` + "`" + ` endpoint lists valid names). Unknown icons render as ` + "`" + `link` + "`" + `.
4. **IDs** are opaque strings, unique within their level. New entities get
   UUIDs; stock cards use readable slugs.
5. **Version** is the schema version. Documents at older versions are
   migrated forward automatically on load.

## Export payload

Backups wrap the document and settings together:

` + "```" + `json
{
  "version": "0.0.3",
  "timestamp": "2025-01-20T12:00:00Z",
  "data": { ...document... },
  "settings": {
    "version": "0.0.3",
    "uniformCardHeight": false,
    "theme": "light",
    "gridColumns": "auto",
    "cardWidth": "sm",
    "containerMargin": "medium"
  }
}
` + "```" + `

Both ` + "`" + `data` + "`" + ` and ` + "`" + `settings` + "`" + ` are required on import; partial payloads are
rejected without touching the stored state.
`
