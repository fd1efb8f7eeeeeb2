package shim

import (
	"fmt"
	"strings"
)

// BashScript returns a bash snippet registering completion for prog. The
// generated function forwards COMP_CWORD and the COMP_WORDS array through
// the side-channel option and reads candidates back one per line.
func BashScript(prog string) string {
	fn := "_" + scriptName(prog) + "_complete"
	return fmt.Sprintf(`%[1]s() {
  local IFS=$'\n'
  COMPREPLY=( $(%[2]s %[3]s "${COMP_CWORD}" "${COMP_WORDS[@]}" 2>/dev/null) )
}
complete -o default -F %[1]s %[2]s
`, fn, prog, CompleteFlag)
}

// ZshScript returns a zsh snippet registering completion for prog, routed
// through zsh's bash compatibility layer so one side-channel protocol
// serves both shells.
func ZshScript(prog string) string {
	return "autoload -U +X bashcompinit && bashcompinit\n" + BashScript(prog)
}

func scriptName(prog string) string {
	var b strings.Builder
	for _, r := range prog {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
