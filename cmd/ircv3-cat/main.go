// ircv3-cat reads raw IRC lines on stdin and prints the parsed structure
// of each one, or the parse error. Useful for eyeballing captured traffic.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TopOTheHourBot/ircv3"
)

func main() {
	r := ircv3.NewReader(os.Stdin)
	for {
		msg, err := r.ReadMessage()
		if err == io.EOF {
			return
		}
		var malformed *ircv3.MalformedMessageError
		if errors.As(err, &malformed) {
			fmt.Printf("! %v (line %q)\n", malformed, malformed.Line)
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
			os.Exit(1)
		}
		printMessage(msg)
	}
}

func printMessage(msg *ircv3.Message) {
	fmt.Printf("verb    %s\n", msg.Verb)
	if msg.Source != nil {
		fmt.Printf("source  name=%q user=%q host=%q\n", msg.Source.Name, msg.Source.User, msg.Source.Host)
	}
	for key, value := range msg.Tags {
		if value.HasValue {
			fmt.Printf("tag     %s=%q\n", key, value.Value)
		} else {
			fmt.Printf("tag     %s\n", key)
		}
	}
	for i, p := range msg.Params {
		fmt.Printf("param   %d %q\n", i, p)
	}
	fmt.Printf("hash    %016x\n", msg.Fingerprint())
	fmt.Println()
}
