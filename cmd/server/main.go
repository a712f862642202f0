package main

import "github.com/nguyentranbao-ct/team-chat/cmd"

func main() {
	cmd.Execute()
}
