// Package main hosts the ladderview CLI.
//
// The command tree loads exported pipeline records from a workbook, a JSON
// file or the clipboard, prints the stage funnel and ladder breakdown for one
// record, builds and opens share links, and runs the HTTP viewer. Rendering
// decisions live in internal/view so the terminal and the browser agree.
package main
