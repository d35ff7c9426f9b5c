package main

import "github.com/VoxDroid/rolo/cmd"

func main() {
	cmd.Execute()
}
