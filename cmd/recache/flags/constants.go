// Package flags holds the CLI front end's flag names and default file
// names in one place so cli.go and main.go agree on them.
package flags

// Flag names, as registered with pflag (GNU-style long flags).
const (
	Entries  = "entries"
	Verbose  = "verbose"
	Loops    = "loops"
	Thorough = "thorough"
	Root     = "root"
	Out      = "out"
	Config   = "config"
	Ignore   = "ignore"
	Workers  = "workers"
	Help     = "help"
)

// DefaultYAMLConfig is looked up relative to the first search root
// unless --config is given. DefaultFileList is always kept in the
// output directory; no flag overrides it. recache.config and
// recache.ignore's default names live with internal/ignorelist, which
// already owns their parsing.
const (
	DefaultYAMLConfig = "recache.yaml"
	DefaultFileList   = "recache.filelist"
)
