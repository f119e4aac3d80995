// Package cpfetch extracts structured competitive-programming problem
// descriptions. It combines the problem metadata published by the site's
// JSON API with content scraped from the browser-rendered problem page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/).
package cpfetch
