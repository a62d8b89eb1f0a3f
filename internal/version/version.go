package version

// Version is stamped at release build time via -ldflags.
var Version = "0.1.0-dev"
