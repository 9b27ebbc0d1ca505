package model

// Version is the release version, overridden with -ldflags at build time.
var Version = "0.1.0-dev"

// RepoOwner and RepoName name the GitHub repository checked by --update.
// Both are empty unless set with -ldflags.
var (
	RepoOwner = ""
	RepoName  = ""
)
