package main

import "github.com/lucasgdosr/deque/v2/cmd/dequefuzz/cmd"

func main() {
	cmd.Execute()
}
