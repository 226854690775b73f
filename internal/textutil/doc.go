// Package textutil holds small text helpers shared by the renderers: field
// label formatting, display fallbacks, and number formatting for summary cards.
package textutil
