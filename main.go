package main

import "github.com/vibast-solutions/ms-go-member-payments/cmd"

func main() {
	cmd.Execute()
}
