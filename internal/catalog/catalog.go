// Package catalog holds the static classification and recommendation tables.
// Both tables are ordered slices, not maps: declaration order is part of the
// contract (the classifier's first-match-wins tie-break and the expander's
// iteration order depend on it).
package catalog

// CategoryKeywords binds one category to the keywords that identify it.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Rule expands one subcategory into candidate application names.
// Weight 0 means DefaultScore applies; a positive value overrides it.
type Rule struct {
	Subcategory string
	Apps        []string
	Weight      float64
}

// CategoryRules groups the rules belonging to one category.
type CategoryRules struct {
	Category string
	Rules    []Rule
}

// Catalog bundles the classification and rule tables.
type Catalog struct {
	Categories []CategoryKeywords
	Rules      []CategoryRules
}

// Default returns the built-in tables.
func Default() Catalog {
	return Catalog{Categories: DefaultCategories, Rules: DefaultRules}
}

// RulesFor returns the rule list for a category, in declaration order.
func (c Catalog) RulesFor(category string) ([]Rule, bool) {
	for _, cr := range c.Rules {
		if cr.Category == category {
			return cr.Rules, true
		}
	}
	return nil, false
}

// AllKeywords returns every classification keyword in table order.
func (c Catalog) AllKeywords() []string {
	var keywords []string
	for _, entry := range c.Categories {
		keywords = append(keywords, entry.Keywords...)
	}
	return keywords
}

// HardwareCategory is the pseudo-category whose rules only apply when the
// hardware probe confirms the matching subcategory.
const HardwareCategory = "hardware_specific"

// Hardware subcategory keys understood by the expander. Matched by exact
// string equality; rules under HardwareCategory with any other subcategory
// pass through unfiltered.
const (
	HardwareAMDGPU    = "amd_gpu"
	HardwareNvidiaGPU = "nvidia_gpu"
	HardwareIntelGPU  = "intel_gpu"
	HardwareLaptop    = "laptop"
)

// DefaultCategories maps package-name keywords to categories. First matching
// category in this order wins.
var DefaultCategories = []CategoryKeywords{
	{Category: "development", Keywords: []string{
		"vscode", "vim", "neovim", "emacs", "jetbrains", "intellij", "pycharm",
		"webstorm", "rider", "clion", "rubymine", "idea", "android-studio", "eclipse",
		"git", "github", "gitlab", "subversion", "mercurial", "docker", "podman",
		"node", "python", "ruby", "rust", "go", "java", "kotlin", "scala", "haskell",
		"clang", "gcc", "llvm",
	}},
	{Category: "graphic_design", Keywords: []string{
		"gimp", "inkscape", "krita", "blender", "darktable", "digikam", "rawtherapee",
		"shotwell", "hugin", "luminance-hdr", "scribus", "photogimp", "figma", "sketch",
		"pinta", "aseprite", "drawio",
	}},
	{Category: "productivity", Keywords: []string{
		"libreoffice", "onlyoffice", "wpsoffice", "calligra", "gnumeric", "abiword",
		"thunderbird", "evolution", "nextcloud", "joplin", "obsidian", "notion",
		"evernote", "simplenote", "standardnotes", "zotero", "mendeley", "calibre",
		"todoist", "tasks", "planner", "gnome-calendar", "korganizer",
	}},
	{Category: "multimedia", Keywords: []string{
		"vlc", "mpv", "kodi", "mplayer", "totem", "rhythmbox", "clementine", "strawberry",
		"lollypop", "audacious", "spotify", "audacity", "ardour", "lmms", "musescore",
		"handbrake", "obs", "kdenlive", "shotcut", "davinci", "openshot", "pitivi",
		"ffmpeg",
	}},
	{Category: "gaming", Keywords: []string{
		"steam", "lutris", "heroic", "wine", "proton", "gamemode", "mangohud", "goverlay",
		"retroarch", "dolphin-emu", "pcsx2", "rpcs3", "yuzu", "citra", "dosbox", "scummvm",
		"itch", "gog", "minigalaxy", "legendary",
	}},
	{Category: "system_tools", Keywords: []string{
		"gnome-system-monitor", "htop", "btop", "iotop", "powertop", "s-tui", "neofetch",
		"gparted", "baobab", "stacer", "bleachbit", "timeshift", "gtkhash", "gnome-disks",
		"filelight", "ncdu", "glances", "inxi", "hardinfo", "clamav", "gufw", "firewalld",
	}},
	{Category: "networking", Keywords: []string{
		"firefox", "chromium", "brave", "opera", "vivaldi", "qutebrowser", "wget", "curl",
		"transmission", "deluge", "qbittorrent", "filezilla", "remmina", "teamviewer",
		"anydesk", "wireshark", "nmap", "netcat", "openssh", "mosh", "wireguard", "openvpn",
		"mullvad", "nordvpn", "protonvpn",
	}},
	{Category: "security", Keywords: []string{
		"keepassxc", "bitwarden", "pass", "gnupg", "cryptsetup", "veracrypt", "tomb",
		"yubikey-manager", "nitrokey-app", "seahorse", "kleopatra", "lastpass",
		"authenticator", "opensnitch", "clamav", "lynis", "chkrootkit", "firejail",
		"apparmor",
	}},
}

// DefaultRules maps (category, subcategory) pairs to candidate apps.
var DefaultRules = []CategoryRules{
	{Category: "development", Rules: []Rule{
		{Subcategory: "python", Apps: []string{"vscode", "pycharm", "jupyter"}},
		{Subcategory: "web", Apps: []string{"vscode", "webstorm", "firefox-developer-edition", "postman"}},
		{Subcategory: "java", Apps: []string{"intellij-idea", "eclipse", "maven", "gradle"}},
		{Subcategory: "rust", Apps: []string{"vscode", "rust-analyzer", "rustup", "cargo"}},
		{Subcategory: "gamedev", Apps: []string{"godot", "blender", "aseprite", "gimp"}},
	}},
	{Category: "gaming", Rules: []Rule{
		{Subcategory: "steam", Apps: []string{"gamemode", "mangohud", "steam-run", "gamescope"}},
		{Subcategory: "emulation", Apps: []string{"retroarch", "lutris", "wine", "proton-ge-custom"}},
		{Subcategory: "recording", Apps: []string{"obs-studio", "replay-sorcery", "nvidia-shadowplay"}},
	}},
	{Category: "multimedia", Rules: []Rule{
		{Subcategory: "audio_production", Apps: []string{"ardour", "audacity", "lmms", "carla", "jack2"}},
		{Subcategory: "video_editing", Apps: []string{"kdenlive", "shotcut", "davinci-resolve", "blender"}},
		{Subcategory: "streaming", Apps: []string{"obs-studio", "streamlink", "yt-dlp", "streamlink-twitch-gui"}},
	}},
	{Category: HardwareCategory, Rules: []Rule{
		{Subcategory: HardwareAMDGPU, Apps: []string{"corectrl", "radeontop", "rocm-smi"}},
		{Subcategory: HardwareNvidiaGPU, Apps: []string{"nvidia-settings", "nvtop", "gwe"}},
		{Subcategory: HardwareIntelGPU, Apps: []string{"intel-gpu-tools", "libva-utils"}},
		{Subcategory: HardwareLaptop, Apps: []string{"powertop", "tlp", "auto-cpufreq", "battery-monitor"}},
	}},
}
