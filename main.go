package main

import "spendview/cmd"

func main() {
	cmd.Execute()
}
