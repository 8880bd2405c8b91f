// Package locales embeds the translation tables shipped with the site.
package locales

import "embed"

// FS holds one <lang>.json table per supported language.
//
//go:embed *.json
var FS embed.FS
