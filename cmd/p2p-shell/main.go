// The p2p-shell command registers the peer-to-peer connection plugin on an in-process
// messenger and drives it over its command channel, the way a host application would.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"github.com/99designs/keyring"
	"github.com/google/shlex"
	"golang.org/x/term"

	"github.com/p2pconn/p2p-connection/internal/log"
	"github.com/p2pconn/p2p-connection/pkg/channel"
	"github.com/p2pconn/p2p-connection/pkg/credentials"
	"github.com/p2pconn/p2p-connection/pkg/p2p"
)

const keyringDirectory = "~/.p2pconn_keys"

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

func Usage() {
	fmt.Printf("Usage: %s [OPTION...] [COMMAND [ARG...]]\n", os.Args[0])
	fmt.Printf("\nWithout a COMMAND, %s starts an interactive shell.\n", os.Args[0])
	fmt.Println("")
	fmt.Printf("Available OPTIONs:\n")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Printf("Available COMMANDs:\n")
	maxLength := 0
	var labels []string
	for command := range commands {
		labels = append(labels, command)
		if len(command) > maxLength {
			maxLength = len(command)
		}
	}
	sort.Strings(labels)
	for _, command := range labels {
		info := commands[command]
		fmt.Printf("  %s%s %s\n", command, strings.Repeat(" ", maxLength-len(command)), info.help)
	}
}

func promptKeyringPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal available for password prompt")
	}
	fmt.Printf("%s: ", prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Println("")
	return string(secret), err
}

// storeOpener returns a function that opens the credential store at most once.
func storeOpener(backendName, fileDir string) func() (*credentials.Store, error) {
	var once sync.Once
	var store *credentials.Store
	var err error
	return func() (*credentials.Store, error) {
		once.Do(func() {
			config := credentials.Config{
				FileDir:      fileDir,
				PasswordFunc: promptKeyringPassword,
			}
			if backendName != "" {
				backend := keyring.BackendType(backendName)
				for _, available := range keyring.AvailableBackends() {
					if available == backend {
						config.AllowedBackends = []keyring.BackendType{backend}
					}
				}
				if config.AllowedBackends == nil {
					err = fmt.Errorf("unsupported keyring type %q", backendName)
					return
				}
			}
			store, err = credentials.Open(config)
		})
		return store, err
	}
}

func runCommand(ctx context.Context, env *environment, args []string) int {
	if err := execute(ctx, env, args); err != nil {
		writeErr("Failed to execute command: %s", err)
		return 1
	}
	return 0
}

func runInteractiveShell(ctx context.Context, env *environment) int {
	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Printf("> "); scanner.Scan(); fmt.Printf("> ") {
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			writeErr("Invalid command: %s", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return 0
		}
		if args[0] == "help" {
			if len(args) > 1 {
				if info, ok := commands[args[1]]; ok {
					info.Usage(args[1])
				} else {
					writeErr("Unrecognized command: %s", args[1])
				}
			} else {
				Usage()
			}
			continue
		}
		runCommand(ctx, env, args)
	}
	if err := scanner.Err(); err != nil {
		writeErr("Error reading command: %s", err)
		return 1
	}
	return 0
}

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	var (
		debug       bool
		backendName string
		fileDir     string
	)
	flag.Usage = Usage
	flag.BoolVar(&debug, "debug", false, "Enable verbose debugging messages")
	var names []string
	for _, name := range keyring.AvailableBackends() {
		names = append(names, string(name))
	}
	sort.Strings(names)
	flag.StringVar(&backendName, "keyring-type", "", "Keyring `type` ("+strings.Join(names, "|")+")")
	flag.StringVar(&fileDir, "keyring-file-dir", keyringDirectory, "keyring `directory` for file-backed keyring types")
	flag.Parse()

	log.SetTag(p2p.LogTag)
	if debug {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelWarning)
	}

	messenger := channel.NewHostMessenger()
	plugin, err := p2p.Register(messenger)
	if err != nil {
		writeErr("Error registering plugin: %s", err)
		return
	}
	defer plugin.Close()

	env := &environment{
		method: channel.NewMethodChannel(messenger, p2p.MethodChannelName),
		plugin: plugin,
		store:  storeOpener(backendName, fileDir),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flag.NArg() > 0 {
		if flag.Arg(0) == "help" {
			if flag.NArg() > 1 {
				if info, ok := commands[flag.Arg(1)]; ok {
					info.Usage(flag.Arg(1))
					status = 0
				} else {
					writeErr("Unrecognized command: %s", flag.Arg(1))
				}
			} else {
				Usage()
				status = 0
			}
			return
		}
		status = runCommand(ctx, env, flag.Args())
	} else {
		status = runInteractiveShell(ctx, env)
	}
}
