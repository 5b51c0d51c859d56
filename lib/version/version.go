package version

// Version is overwritten at build time with -ldflags "-X github.com/umlkit/umlkit/lib/version.Version=...".
var Version = "v0.1.0-HEAD"
