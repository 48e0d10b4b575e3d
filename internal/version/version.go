package version

// Version is the server version reported to clients and the CLI.
var Version = "0.1.0"
