package resources

import "embed"

//go:embed ui
var UI embed.FS

//go:embed licenses.txt
var Licenses string

// ParamsFile is the path, inside UI, of the initial control panel values.
const ParamsFile = "ui/params.toml"
