// Package view assembles the render model for one record: key identifiers,
// summary cards, the filtering funnel, classified ladder info, additional
// details, and configuration settings.
//
// The model is plain data shared by the HTML viewer, the JSON API, and the
// CLI tables. The shared variant leaves configuration settings out and is the
// only form a share token is ever rendered in.
package view
