package main

import "github.com/mouse-blink/logtag/cmd"

func main() {
	cmd.Execute()
}
