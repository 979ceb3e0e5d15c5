package main

import "github.com/helenb/wagtail-torchbox/cmd"

func main() {
	cmd.Execute()
}
