// Package components provides a small theme-aware component library for terminal
// applications, built on top of lipgloss.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (palette, borders, typography, field metrics)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable UI elements that render to strings
//
// Themes are passed explicitly through RenderContext, never through globals:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically.
//
// # Components
//
//   - Text: styled text content
//   - IconButton: a single glyph that forwards presses to an optional handler
//   - Stack: vertical/horizontal arrangement with gaps; empty children take no space
//
// # Colour
//
// Terminals have no alpha channel. Blend and Over interpolate adaptive colours
// in Lab and RGB space respectively, which is how translucent fills and
// animated colour changes are drawn.
package components
