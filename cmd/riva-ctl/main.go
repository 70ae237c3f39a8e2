package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/spf13/pflag"

	"riva/internal/ipc"
)

func main() {
	lang := cli.String("lang", "", "Reply language (en|hi)")
	cli.Parse()

	args := cli.Args()
	if len(args) == 0 {
		fmt.Println("usage: riva-ctl [--lang en|hi] trigger | ask <text> | reset")
		os.Exit(1)
	}

	msg := ipc.ControlMessage{Cmd: args[0], Lang: *lang}
	if msg.Cmd == "ask" {
		msg.Text = strings.Join(args[1:], " ")
	}

	if err := ipc.Send(msg); err != nil {
		fmt.Println("riva-daemon not running:", err)
		os.Exit(1)
	}
}
