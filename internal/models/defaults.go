package models

// DefaultDocument returns the stock dashboard seeded on first load.
func DefaultDocument() *Document {
	return &Document{
		Version: SchemaVersion,
		Cards: []Card{
			{
				ID:    "google-workspace",
				Title: "Google Workspace",
				Color: "blue-500",
				Order: 0,
				Links: []Link{
					{ID: "gmail", Title: "Gmail", URL: "https://mail.google.com", Icon: "mail", Color: "red-500", Order: 0},
					{ID: "drive", Title: "Google Drive", URL: "https://drive.google.com", Icon: "folder", Color: "yellow-500", Order: 1},
					{ID: "docs", Title: "Google Docs", URL: "https://docs.google.com", Icon: "document-text", Color: "blue-500", Order: 2},
					{ID: "sheets", Title: "Google Sheets", URL: "https://sheets.google.com", Icon: "table", Color: "green-500", Order: 3},
					{ID: "chat", Title: "Google Chat", URL: "https://chat.google.com", Icon: "chat-bubble-left-right", Color: "green-500", Order: 4},
				},
			},
			{
				ID:    "ai-tools",
				Title: "AI Tools",
				Color: "purple-500",
				Order: 1,
				Links: []Link{
					{ID: "chatgpt", Title: "ChatGPT", URL: "https://chat.openai.com", Icon: "cpu-chip", Color: "green-500", Order: 0},
					{ID: "claude", Title: "Claude", URL: "https://claude.ai", Icon: "brain", Color: "orange-500", Order: 1},
					{ID: "copilot", Title: "GitHub Copilot", URL: "https://github.com/features/copilot", Icon: "code-bracket", Color: "gray-500", Order: 2},
					{ID: "midjourney", Title: "Midjourney", URL: "https://www.midjourney.com", Icon: "photo", Color: "blue-500", Order: 3},
					{ID: "runway", Title: "Runway", URL: "https://runwayml.com", Icon: "video-camera", Color: "purple-500", Order: 4},
				},
			},
			{
				ID:    "business-tools",
				Title: "Business Tools",
				Color: "emerald-500",
				Order: 2,
				Links: []Link{
					{ID: "salesforce", Title: "Salesforce", URL: "https://salesforce.com", Icon: "cloud", Color: "blue-500", Order: 0},
					{ID: "monday", Title: "Monday.com", URL: "https://monday.com", Icon: "calendar-days", Color: "blue-500", Order: 1},
					{ID: "unbounce", Title: "Unbounce", URL: "https://unbounce.com", Icon: "rocket-launch", Color: "orange-500", Order: 2},
					{ID: "adobe-stock", Title: "Adobe Stock", URL: "https://stock.adobe.com", Icon: "photo", Color: "red-500", Order: 3},
					{ID: "github", Title: "GitHub", URL: "https://github.com", Icon: "code-bracket-square", Color: "gray-500", Order: 4},
				},
			},
		},
	}
}

// DefaultSettings returns the settings seeded on first load.
func DefaultSettings() *Settings {
	return &Settings{
		Version:           SchemaVersion,
		UniformCardHeight: false,
		Theme:             ThemeLight,
		GridColumns:       "auto",
		CardWidth:         CardWidthSM,
		ContainerMargin:   MarginMedium,
	}
}
