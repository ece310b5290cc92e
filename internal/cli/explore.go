package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/prevoccupai/ohp/internal/profile"
)

// catDepth bounds how deep 'cat' renders container values.
const catDepth = 2

// exploreCommands are the interactive session commands, for completion.
var exploreCommands = []string{"ls", "cd", "cat", "up", "top", "pwd", "paths", "help", "quit"}

// exploreSession navigates one subject's document tree. The command handling
// is separated from the liner loop so it can be driven directly in tests.
type exploreSession struct {
	subject string
	stack   []*profile.Document // navigation stack; stack[0] is the root
	trail   []string            // display segments for pwd
}

// execExplore starts an interactive exploration session for one subject.
func execExplore(o *IO, store *profile.Store, subject string, env map[string]string) error {
	doc, err := lookup(store, subject)
	if err != nil {
		return err
	}

	sess := &exploreSession{subject: subject, stack: []*profile.Document{doc}}

	return sess.runLoop(o, env)
}

// historyFile returns the path to the explore history file, or "" when no
// home directory is known.
func historyFile(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".ohp_history")
	}

	return ""
}

// runLoop drives the liner prompt until quit, Ctrl-C, or EOF.
func (s *exploreSession) runLoop(o *IO, env map[string]string) error {
	prompt := liner.NewLiner()
	defer func() { _ = prompt.Close() }()

	prompt.SetCtrlCAborts(true)
	prompt.SetCompleter(s.complete)

	if histPath := historyFile(env); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = prompt.ReadHistory(f)
			_ = f.Close()
		}
	}

	o.Printf("exploring %s\n", s.subject)
	o.Println("Type 'help' for commands, 'quit' to exit.")
	o.Println()

	for {
		input, err := prompt.Prompt("ohp> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				o.Println()

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		prompt.AppendHistory(input)

		if s.handle(input, o) {
			break
		}
	}

	s.saveHistory(prompt, env)

	return nil
}

func (s *exploreSession) saveHistory(prompt *liner.State, env map[string]string) {
	histPath := historyFile(env)
	if histPath == "" {
		return
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = prompt.WriteHistory(f)
		_ = f.Close()
	}
}

// handle executes one session command. Returns true when the session is done.
func (s *exploreSession) handle(input string, o *IO) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "help", "?":
		printExploreHelp(o)

	case "ls":
		// Top-level keys and types of the current node.
		_ = profile.Inspect(o.Out(), s.cur(), 0)

	case "pwd":
		o.Println(s.pwd())

	case "cd":
		s.changeDir(o, args)

	case "cat":
		s.cat(o, args)

	case "up":
		s.up(o)

	case "top":
		s.stack = s.stack[:1]
		s.trail = nil

	case "paths":
		s.paths(o)

	default:
		o.Printf("unknown command: %s (try 'help')\n", cmd)
	}

	return false
}

func (s *exploreSession) cur() *profile.Document {
	return s.stack[len(s.stack)-1]
}

func (s *exploreSession) pwd() string {
	if len(s.trail) == 0 {
		return "/"
	}

	return strings.Join(s.trail, ".")
}

func (s *exploreSession) changeDir(o *IO, args []string) {
	if len(args) == 0 {
		o.Println("usage: cd <path> | cd ..")

		return
	}

	if args[0] == ".." {
		s.up(o)

		return
	}

	target, ok := profile.Resolve(s.cur(), args[0])
	if !ok {
		o.Printf("no such path: %s\n", args[0])

		return
	}

	if !target.IsContainer() {
		o.Printf("not a container: %s (use 'cat')\n", args[0])

		return
	}

	s.stack = append(s.stack, target)
	s.trail = append(s.trail, args[0])
}

func (s *exploreSession) cat(o *IO, args []string) {
	if len(args) == 0 {
		o.Println("usage: cat <path>")

		return
	}

	target, ok := profile.Resolve(s.cur(), args[0])
	if !ok {
		o.Printf("no such path: %s\n", args[0])

		return
	}

	_ = profile.Inspect(o.Out(), target, catDepth)
}

func (s *exploreSession) up(o *IO) {
	if len(s.stack) == 1 {
		o.Println("already at root")

		return
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.trail = s.trail[:len(s.trail)-1]
}

func (s *exploreSession) paths(o *IO) {
	paths, err := profile.EnumeratePaths(s.cur(), pathEnumDepth)
	if err != nil {
		o.Printf("paths: %v\n", err)

		return
	}

	o.Printf("paths (%d total):\n", len(paths))

	shown := paths
	if len(shown) > pathDisplayLimit {
		shown = shown[:pathDisplayLimit]
	}

	for _, path := range shown {
		o.Println(" ", path)
	}

	if rest := len(paths) - len(shown); rest > 0 {
		o.Printf("  ... and %d more\n", rest)
	}
}

// complete suggests command names, and mapping keys after cd/cat.
func (s *exploreSession) complete(input string) []string {
	if cmd, rest, found := strings.Cut(input, " "); found && (cmd == "cd" || cmd == "cat") {
		cur := s.cur()
		if cur.Kind != profile.KindMapping {
			return nil
		}

		var out []string

		for _, key := range cur.Keys {
			if strings.HasPrefix(key, rest) {
				out = append(out, cmd+" "+key)
			}
		}

		return out
	}

	var out []string

	for _, cmd := range exploreCommands {
		if strings.HasPrefix(cmd, input) {
			out = append(out, cmd)
		}
	}

	return out
}

func printExploreHelp(o *IO) {
	o.Println("Commands:")
	o.Println("  ls           List keys and types at the current node")
	o.Println("  cd <path>    Descend into a container (cd .. to go up)")
	o.Println("  cat <path>   Show the value at a path")
	o.Println("  up           Go up one level")
	o.Println("  top          Return to the document root")
	o.Println("  pwd          Show the current path")
	o.Println("  paths        Enumerate paths under the current node")
	o.Println("  help         Show this help")
	o.Println("  quit         Exit the session")
}
