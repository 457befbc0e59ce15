package main

import "lovejournal-backend/cmd"

func main() {
	cmd.Execute()
}
