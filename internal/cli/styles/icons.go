package styles

// Nerd Font icons used by the CLI output.
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron-right
	IconPalette = "\uf53f" // palette
	IconLock    = "\uf023" // lock
	IconGlobe   = "\uf0ac" // browser/web
	IconSearch  = "\uf002" // search
	IconReload  = "\uf01e" // rotate-right
	IconStop    = "\uf04d" // stop
	IconBook    = "\uf02d" // reader mode
	IconBack    = "\uf060" // arrow-left
	IconForward = "\uf061" // arrow-right
	IconShare   = "\uf064" // share
	IconKey     = "\uf084" // password manager
	IconPlus    = "\uf067" // add tab
)

// Build info icons.
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
)
