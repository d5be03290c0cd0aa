package main

import "github.com/medikacare/terapis-management/cmd"

func main() {
	cmd.Execute()
}
