package model

// Version is the rbnotes release, overridden at build time with
// -ldflags "-X rbnotes/internal/model.Version=...".
var Version = "0.3.0"
