package version

// AppVersion is the semantic version reported by the CLI and the API.
var AppVersion = "0.2.0"
