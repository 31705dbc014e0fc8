package main

import "github.com/kurumiimari/bithub/cmd/bithub/cmd"

func main() {
	cmd.Execute()
}
