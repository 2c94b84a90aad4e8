package main

import "order-hub/cmd"

func main() {
	cmd.Execute()
}
