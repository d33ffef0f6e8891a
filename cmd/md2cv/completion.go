package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file restricted to extensions
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
	Exts   []string // for file flags, without dots
}

// commandDef describes a command for completion.
type commandDef struct {
	Name     string
	Desc     string
	Flags    []flagDef
	FileExts []string // extensions accepted as arguments, nil for none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values []string
	Exts   []string
	IsDir  bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format":     {Values: formatNames(md2cv.Formats)},
	"template":   {Values: []string{assets.DefaultTemplateName, "es"}},
	"config":     {Exts: []string{"yaml", "yml"}},
	"asset-path": {IsDir: true},
}

var markdownExts = []string{"md", "markdown"}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case len(meta.Exts) > 0:
				fd.Type = flagFile
				fd.Exts = meta.Exts
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	convertFS, _ := newConvertFlagSet()
	checkFS, _ := newCheckFlagSet()
	extractFS, _ := newExtractFlagSet()
	initFS, _ := newInitFlagSet()
	configFS, _ := newConfigFlagSet()

	return []commandDef{
		{Name: "convert", Desc: "Export markdown résumés", Flags: extractFlagsFromFlagSet(convertFS), FileExts: markdownExts},
		{Name: "check", Desc: "Report résumé content hints", Flags: extractFlagsFromFlagSet(checkFS), FileExts: markdownExts},
		{Name: "extract", Desc: "Print the markdown embedded in a PDF", Flags: extractFlagsFromFlagSet(extractFS), FileExts: []string{"pdf"}},
		{Name: "init", Desc: "Write a starter résumé", Flags: extractFlagsFromFlagSet(initFS), FileExts: markdownExts},
		{Name: "config", Desc: "Print the effective configuration", Flags: extractFlagsFromFlagSet(configFS)},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2cv completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2cv completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2cv completion fish > ~/.config/fish/completions/md2cv.fish")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(cmds []commandDef) string {
	var b strings.Builder

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}

	b.WriteString("# bash completion for md2cv\n")
	b.WriteString("_md2cv() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\") %s)\n", strings.Join(names, " "), bashFiles(markdownExts))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FileExts == nil {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var valueCases []string
		var words []string
		for _, f := range c.Flags {
			words = append(words, "--"+f.Long)
			if f.Short != "" {
				words = append(words, "-"+f.Short)
			}
			if action := bashValueAction(f); action != "" {
				valueCases = append(valueCases, fmt.Sprintf("        %s) %s; return ;;\n", flagAlternatives(f, "|"), action))
			}
		}

		if len(valueCases) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, vc := range valueCases {
				b.WriteString("    " + vc)
			}
			b.WriteString("        esac\n")
		}
		if len(words) > 0 {
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		if c.FileExts != nil {
			fmt.Fprintf(&b, "        COMPREPLY=(%s)\n", bashFiles(c.FileExts))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    help)\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	b.WriteString("        ;;\n")
	b.WriteString("    completion)\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"$cur\"))\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -o filenames -F _md2cv md2cv\n")
	return b.String()
}

// bashValueAction returns the COMPREPLY assignment for a flag argument,
// or "" for flags that take none.
func bashValueAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagInt:
		return "COMPREPLY=()"
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
	case flagFile:
		return fmt.Sprintf("COMPREPLY=(%s)", bashFiles(f.Exts))
	case flagDir:
		return "COMPREPLY=($(compgen -d -- \"$cur\"))"
	default:
		return "COMPREPLY=($(compgen -f -- \"$cur\"))"
	}
}

// bashFiles completes directories and files with one of exts.
func bashFiles(exts []string) string {
	return fmt.Sprintf("$(compgen -d -- \"$cur\") $(compgen -f -X '!*.@(%s)' -- \"$cur\")", strings.Join(exts, "|"))
}

// flagAlternatives joins the long and short spellings of a flag with sep.
func flagAlternatives(f flagDef, sep string) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "-" + f.Short + sep + "--" + f.Long
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef md2cv\n\n")
	b.WriteString("_md2cv() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	fmt.Fprintf(&b, "        _files -g %s\n", zshGlob(markdownExts))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && c.FileExts == nil {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        _arguments")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n            %s", zshFlagSpec(f))
		}
		if c.FileExts != nil {
			fmt.Fprintf(&b, " \\\n            '*:file:_files -g %s'", strings.ReplaceAll(zshGlob(c.FileExts), "'", "\""))
		}
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    help)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    completion)\n")
	b.WriteString("        _values 'shell' bash zsh fish\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2cv md2cv\n")
	return b.String()
}

// zshFlagSpec renders one _arguments option string.
func zshFlagSpec(f flagDef) string {
	names := "--" + f.Long
	exclusion := ""
	if f.Short != "" {
		names = "{-" + f.Short + ",--" + f.Long + "}"
		exclusion = "'(-" + f.Short + " --" + f.Long + ")'"
	}

	desc := "'[" + zshQuote(f.Desc) + "]"
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagInt:
		action = ":number: "
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g " + strings.ReplaceAll(zshGlob(f.Exts), "'", "\"")
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":_files"
	}

	if f.Short == "" {
		return "'" + names + desc[1:] + action + "'"
	}
	return exclusion + names + desc + action + "'"
}

// zshGlob builds a quoted glob such as '*.(md|markdown)'.
func zshGlob(exts []string) string {
	return "'*.(" + strings.Join(exts, "|") + ")'"
}

// zshQuote escapes text for a single-quoted _arguments description.
func zshQuote(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for md2cv\n")
	b.WriteString("complete -c md2cv -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2cv -n __fish_use_subcommand -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}
	b.WriteString("complete -c md2cv -n __fish_use_subcommand -k -a '(__fish_complete_suffix .md)'\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		for _, f := range c.Flags {
			var opt strings.Builder
			fmt.Fprintf(&opt, "complete -c md2cv %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&opt, " -s %s", f.Short)
			}
			fmt.Fprintf(&opt, " -l %s", f.Long)
			switch f.Type {
			case flagBool:
			case flagInt:
				opt.WriteString(" -x")
			case flagEnum:
				fmt.Fprintf(&opt, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&opt, " -r -a '(__fish_complete_suffix .%s)'", f.Exts[0])
			case flagDir:
				opt.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				opt.WriteString(" -r -F")
			}
			fmt.Fprintf(&opt, " -d '%s'\n", fishQuote(f.Desc))
			b.WriteString(opt.String())
		}
		for _, ext := range c.FileExts {
			fmt.Fprintf(&b, "complete -c md2cv %s -k -a '(__fish_complete_suffix .%s)'\n", cond, ext)
		}
	}

	b.WriteString("complete -c md2cv -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n")
	return b.String()
}

// fishQuote escapes text for a single-quoted fish string.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}
