package webui

import _ "embed"

// Index stores the dashboard page so the server binary stays detached from
// the filesystem at runtime.
//
//go:embed index.html
var Index []byte
