// Package web serves the HTTP record viewer.
//
// The dashboard steps through the currently loaded dataset and offers a share
// link per record; the shared route renders a record decoded from a share
// token without its configuration settings. A JSON API mirrors both views.
// Only one viewer may run per state directory, enforced by a lock file.
package web
