package docs

import "embed"

// FS contains long-form Markdown docs bundled with the fsq binary.
//
//go:embed *.md
var FS embed.FS
