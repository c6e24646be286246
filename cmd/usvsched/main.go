package main

import "github.com/example/usvsched/cmd"

func main() {
	cmd.Execute()
}
