package main

import "holdsync/internal/cmd"

func main() {
	cmd.Execute()
}
