package ui

// RenderScopePanel wraps the rendered CRT screen with a styled border.
// The screen itself is rendered externally to avoid import cycles.
func RenderScopePanel(width, height int, screenContent string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(screenContent)
}

// RenderViewPanel wraps a tube cross-section view with a titled border.
func RenderViewPanel(width, height int, title, content string) string {
	body := StylePanelTitle.Render(title) + "\n" + content
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(body)
}
