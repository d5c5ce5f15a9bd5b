package registry

import (
	"github.com/quantmind-br/rig/internal/platform"
)

// macOSRegistry is the static package table for macOS hosts. Homebrew is
// the bootstrap entry: everything below it installs through brew.
func macOSRegistry(info platform.Info) (*Registry, error) {
	brewBin := platform.BrewPrefix(info.Arch) + "/bin/brew"

	entries := []Descriptor{
		{
			Key:         "homebrew",
			Kind:        KindScript,
			Target:      "homebrew",
			Probe:       "command -v brew >/dev/null 2>&1 || test -x " + brewBin,
			DisplayName: "Homebrew",
			Script:      installHomebrew,
			Bootstrap:   true,
		},
		{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "brew list --formula git >/dev/null 2>&1", DisplayName: "Git"},
		{Key: "gh", Kind: KindNativePackage, Target: "gh", Probe: "brew list --formula gh >/dev/null 2>&1", DisplayName: "GitHub CLI"},
		{Key: "tmux", Kind: KindNativePackage, Target: "tmux", Probe: "brew list --formula tmux >/dev/null 2>&1", DisplayName: "tmux"},
		{Key: "ripgrep", Kind: KindNativePackage, Target: "ripgrep", Probe: "command -v rg", DisplayName: "ripgrep"},
		{Key: "fzf", Kind: KindNativePackage, Target: "fzf", Probe: "brew list --formula fzf >/dev/null 2>&1", DisplayName: "fzf"},
		{Key: "jq", Kind: KindNativePackage, Target: "jq", Probe: "brew list --formula jq >/dev/null 2>&1", DisplayName: "jq"},
		{Key: "wget", Kind: KindNativePackage, Target: "wget", Probe: "brew list --formula wget >/dev/null 2>&1", DisplayName: "wget"},
		{Key: "node", Kind: KindNativePackage, Target: "node", Probe: "brew list --formula node >/dev/null 2>&1", DisplayName: "Node.js"},
		{Key: "terraform", Kind: KindTap, Target: "hashicorp/tap/terraform", Probe: "command -v terraform", DisplayName: "Terraform"},
		{Key: "vscode", Kind: KindCaskOrSnap, Target: "visual-studio-code", Probe: `test -d "/Applications/Visual Studio Code.app"`, DisplayName: "Visual Studio Code"},
		{Key: "docker", Kind: KindCaskOrSnap, Target: "docker", Probe: "test -d /Applications/Docker.app", DisplayName: "Docker Desktop"},
		{Key: "ollama", Kind: KindCaskOrSnap, Target: "ollama", Probe: "command -v ollama >/dev/null 2>&1 || test -d /Applications/Ollama.app", DisplayName: "Ollama"},
		{Key: "oh-my-zsh", Kind: KindScript, Target: "oh-my-zsh", Probe: `test -d "$HOME/.oh-my-zsh"`, DisplayName: "Oh My Zsh", Script: installOhMyZsh},
		{Key: "rustup", Kind: KindScript, Target: "rustup", Probe: `command -v rustup >/dev/null 2>&1 || test -x "$HOME/.cargo/bin/rustup"`, DisplayName: "Rust toolchain", Script: installRustup},
	}

	followUps := []string{
		"Open Docker Desktop once to finish its privileged helper setup",
		"Run `gh auth login` to authenticate the GitHub CLI",
		"Run `ollama pull <model>` to download a model",
		"Open a new terminal session so brew and cargo land on PATH",
	}

	return New(platform.OSMacOS, entries, followUps)
}
