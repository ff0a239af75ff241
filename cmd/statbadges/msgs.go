package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render SVG statistics badges for a profile"
	MsgGenerateShort   = "Render the overview and languages badges"
	MsgImportShort     = "Store a statistics snapshot"
	MsgShowShort       = "Print the statistics the badges are built from"
	MsgHistoryShort    = "List stored snapshots"
	MsgServeShort      = "Serve generated badges for preview"
	MsgConfigShort     = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	MsgGenerateExample = `  ACCESS_TOKEN=... GITHUB_ACTOR=ada statbadges generate
  statbadges generate --snapshot stats.yaml -o badges
  statbadges generate --dry-run -v`
	MsgImportExample = `  statbadges import stats.yaml
  GITHUB_ACTOR=ada statbadges import stats.json`

	// Status messages
	MsgSnapshotStored = "Stored snapshot %d for %s\n"
	MsgServing        = "Serving badges from %s on http://%s\n"

	// Error messages
	MsgErrNoCommand = "unknown command %q"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Render without writing any file"
	MsgFlagConfig    = "Config file (default: ./statbadges.toml, then the XDG config directory)"
	MsgFlagStore     = "Snapshot database (overrides store.path)"
	MsgFlagOutput    = "Output directory (overrides output.dir)"
	MsgFlagTemplates = "Template directory (overrides templates.dir)"
	MsgFlagSnapshot  = "Snapshot file to render from (overrides source.snapshot)"
	MsgFlagValidate  = "Check that every badge is well-formed SVG before writing"
	MsgFlagAddr      = "Listen address (overrides server.addr)"
	MsgFlagWidth     = "Wrap output at this width (0 for the default)"
	MsgFlagUser      = "User to list snapshots for (default: GITHUB_ACTOR)"
	MsgFlagResolved  = "Print the resolved configuration instead of the defaults"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
