package main

import "github.com/lexhour/lexhour/cmd"

func main() {
	cmd.Execute()
}
