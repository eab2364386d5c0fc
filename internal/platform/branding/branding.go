// Package branding holds product naming shared by commands and templates.
package branding

// AppName is the product name shown in page titles and CLI output.
const AppName = "Heritage Archive"

// Tagline is the subtitle shown under AppName in the styleguide header.
const Tagline = "Community heritage archive"
