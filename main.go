package main

import "github.com/asatlas/peergroup/cmd"

func main() {
	cmd.Execute()
}
