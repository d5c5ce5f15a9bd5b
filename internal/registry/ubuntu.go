package registry

import (
	"github.com/quantmind-br/rig/internal/platform"
)

// ubuntuRegistry is the static package table for Ubuntu/Debian hosts.
// There is no bootstrap entry: apt ships with the OS. The table diverges
// from the macOS one on purpose; the two platforms are independent data.
func ubuntuRegistry() (*Registry, error) {
	entries := []Descriptor{
		{Key: "build-essential", Kind: KindNativePackage, Target: "build-essential", Probe: "dpkg -s build-essential >/dev/null 2>&1", DisplayName: "Build essentials"},
		{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "dpkg -s git >/dev/null 2>&1", DisplayName: "Git"},
		{Key: "gh", Kind: KindNativePackage, Target: "gh", Probe: "dpkg -s gh >/dev/null 2>&1", DisplayName: "GitHub CLI"},
		{Key: "zsh", Kind: KindNativePackage, Target: "zsh", Probe: "dpkg -s zsh >/dev/null 2>&1", DisplayName: "Zsh"},
		{Key: "tmux", Kind: KindNativePackage, Target: "tmux", Probe: "dpkg -s tmux >/dev/null 2>&1", DisplayName: "tmux"},
		{Key: "ripgrep", Kind: KindNativePackage, Target: "ripgrep", Probe: "dpkg -s ripgrep >/dev/null 2>&1", DisplayName: "ripgrep"},
		{Key: "fzf", Kind: KindNativePackage, Target: "fzf", Probe: "dpkg -s fzf >/dev/null 2>&1", DisplayName: "fzf"},
		{Key: "jq", Kind: KindNativePackage, Target: "jq", Probe: "dpkg -s jq >/dev/null 2>&1", DisplayName: "jq"},
		{Key: "curl", Kind: KindNativePackage, Target: "curl", Probe: "dpkg -s curl >/dev/null 2>&1", DisplayName: "curl"},
		{Key: "neovim", Kind: KindTap, Target: "ppa:neovim-ppa/stable/neovim", Probe: "dpkg -s neovim >/dev/null 2>&1", DisplayName: "Neovim"},
		{Key: "vscode", Kind: KindCaskOrSnap, Target: "code", Probe: "snap list code >/dev/null 2>&1", DisplayName: "Visual Studio Code", Classic: true},
		{Key: "spotify", Kind: KindCaskOrSnap, Target: "spotify", Probe: "snap list spotify >/dev/null 2>&1", DisplayName: "Spotify"},
		{Key: "oh-my-zsh", Kind: KindScript, Target: "oh-my-zsh", Probe: `test -d "$HOME/.oh-my-zsh"`, DisplayName: "Oh My Zsh", Script: installOhMyZsh},
		{Key: "rustup", Kind: KindScript, Target: "rustup", Probe: `command -v rustup >/dev/null 2>&1 || test -x "$HOME/.cargo/bin/rustup"`, DisplayName: "Rust toolchain", Script: installRustup},
		{Key: "ollama", Kind: KindScript, Target: "ollama", Probe: "command -v ollama", DisplayName: "Ollama", Script: installOllama},
	}

	followUps := []string{
		"Run `gh auth login` to authenticate the GitHub CLI",
		"Run `ollama pull <model>` to download a model",
		"Enable the ollama service with `sudo systemctl enable --now ollama`",
		"Log out and back in for a default shell change to take effect",
	}

	return New(platform.OSUbuntu, entries, followUps)
}
