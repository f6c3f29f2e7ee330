package main

import "vendorpanel/internal/cli"

func main() {
	cli.Execute()
}
