package main

import "github.com/RealityNet/teleparser/cmd"

func main() {
	cmd.Execute()
}
