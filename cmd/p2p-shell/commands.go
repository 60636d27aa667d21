package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/term"

	"github.com/p2pconn/p2p-connection/pkg/channel"
	"github.com/p2pconn/p2p-connection/pkg/credentials"
	"github.com/p2pconn/p2p-connection/pkg/p2p"
)

var ErrCommandLineArgs = errors.New("invalid command line arguments")

type Argument struct {
	name string
	help string
}

// environment is the shared state shell commands run against. The credential store opens
// lazily so commands that never touch it cannot trigger a keyring password prompt.
type environment struct {
	method *channel.MethodChannel
	plugin *p2p.Plugin
	store  func() (*credentials.Store, error)
}

type Handler func(ctx context.Context, env *environment, args map[string]string) error

type Command struct {
	help     string
	args     []Argument
	optional []Argument
	handler  Handler
}

var commands = map[string]*Command{
	"version": {
		help:    "Query the plugin for the operating system version string.",
		handler: versionHandler,
	},
	"call": {
		help: "Invoke an arbitrary method on the plugin's command channel.",
		args: []Argument{
			{name: "METHOD", help: "Method name, e.g. ble#startScan."},
		},
		optional: []Argument{
			{name: "ARGS", help: "JSON-encoded arguments."},
		},
		handler: callHandler,
	},
	"listen": {
		help: "Print events from one of the plugin's event channels until interrupted.",
		args: []Argument{
			{name: "CHANNEL", help: "Event channel name, e.g. " + p2p.HotspotStateChannelName + "."},
		},
		handler: listenHandler,
	},
	"set-credentials": {
		help: "Store the hotspot credential pair in the system keyring.",
		args: []Argument{
			{name: "SSID", help: "Hotspot network name."},
		},
		optional: []Argument{
			{name: "PSK", help: "Pre-shared key. Omit to be prompted without echo."},
		},
		handler: setCredentialsHandler,
	},
	"show-credentials": {
		help:    "Print the stored hotspot credential pair.",
		handler: showCredentialsHandler,
	},
	"clear-credentials": {
		help:    "Remove the stored hotspot credential pair from the keyring.",
		handler: clearCredentialsHandler,
	},
}

// parseJSONArguments decodes the optional ARGS string for the call command.
func parseJSONArguments(args string) (interface{}, error) {
	if args == "" {
		return nil, nil
	}
	if !gjson.Valid(args) {
		return nil, fmt.Errorf("%w: ARGS is not valid JSON", ErrCommandLineArgs)
	}
	return gjson.Parse(args).Value(), nil
}

func printResult(result channel.Result) error {
	switch result.Status {
	case channel.StatusSuccess:
		fmt.Printf("%v\n", result.Value)
		return nil
	case channel.StatusError:
		return fmt.Errorf("%s: %s", result.Code, result.Message)
	case channel.StatusNotImplemented:
		return errors.New("method not implemented on this platform")
	}
	return fmt.Errorf("unexpected result status %s", result.Status)
}

func versionHandler(ctx context.Context, env *environment, _ map[string]string) error {
	result, err := env.method.Invoke(ctx, "getPlatformVersion", nil)
	if err != nil {
		return err
	}
	return printResult(result)
}

func callHandler(ctx context.Context, env *environment, args map[string]string) error {
	arguments, err := parseJSONArguments(args["ARGS"])
	if err != nil {
		return err
	}
	result, err := env.method.Invoke(ctx, args["METHOD"], arguments)
	if err != nil {
		return err
	}
	return printResult(result)
}

func listenHandler(ctx context.Context, env *environment, args map[string]string) error {
	events := env.plugin.Events(args["CHANNEL"])
	if events == nil {
		names := []string{
			p2p.ClientStateChannelName,
			p2p.HotspotStateChannelName,
			p2p.BleScanResultChannelName,
			p2p.BleConnectionStateChannelName,
			p2p.BleReceivedDataChannelName,
		}
		return fmt.Errorf("%w: CHANNEL must be one of %s", ErrCommandLineArgs, strings.Join(names, ", "))
	}
	subscriber := events.Subscribe()
	defer events.Unsubscribe(subscriber)
	for {
		select {
		case payload, ok := <-subscriber:
			if !ok {
				return nil
			}
			fmt.Printf("%s\n", payload)
		case <-ctx.Done():
			return nil
		}
	}
}

func setCredentialsHandler(_ context.Context, env *environment, args map[string]string) error {
	psk, havePSK := args["PSK"]
	if !havePSK {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return errors.New("no terminal available to prompt for PSK; pass it as an argument")
		}
		fmt.Printf("Pre-shared key: ")
		secret, err := term.ReadPassword(fd)
		fmt.Println("")
		if err != nil {
			return err
		}
		psk = string(secret)
	}
	store, err := env.store()
	if err != nil {
		return err
	}
	return store.Save(credentials.Credentials{SSID: args["SSID"], PSK: psk})
}

func showCredentialsHandler(_ context.Context, env *environment, _ map[string]string) error {
	store, err := env.store()
	if err != nil {
		return err
	}
	pair, err := store.Load()
	if err != nil {
		return err
	}
	fmt.Printf("SSID: %s\nPSK:  %s\n", pair.SSID, pair.PSK)
	return nil
}

func clearCredentialsHandler(_ context.Context, env *environment, _ map[string]string) error {
	store, err := env.store()
	if err != nil {
		return err
	}
	return store.Clear()
}

func execute(ctx context.Context, env *environment, args []string) error {
	if len(args) == 0 {
		return errors.New("missing COMMAND")
	}
	info, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unrecognized command: %s", args[0])
	}

	var err error
	if len(args)-1 < len(info.args) || len(args)-1 > len(info.args)+len(info.optional) {
		writeErr("Invalid number of command line arguments: %d (%d required, %d optional).", len(args)-1, len(info.args), len(info.optional))
		err = ErrCommandLineArgs
	} else {
		keywords := make(map[string]string)
		for i, argInfo := range info.args {
			keywords[argInfo.name] = args[i+1]
		}
		index := len(info.args) + 1
		for _, argInfo := range info.optional {
			if index >= len(args) {
				break
			}
			keywords[argInfo.name] = args[index]
			index++
		}
		err = info.handler(ctx, env, keywords)
	}

	// Print command-specific help
	if errors.Is(err, ErrCommandLineArgs) {
		info.Usage(args[0])
	}
	return err
}

func (c *Command) Usage(name string) {
	fmt.Printf("Usage: %s", name)
	maxLength := 0
	for _, arg := range c.args {
		fmt.Printf(" %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Printf(" [")
	}
	for _, arg := range c.optional {
		fmt.Printf(" %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Printf(" ]")
	}
	fmt.Printf("\n%s\n", c.help)
	maxLength++
	for _, arg := range c.args {
		fmt.Printf("    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
	for _, arg := range c.optional {
		fmt.Printf("    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
}
