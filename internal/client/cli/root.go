package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.UserName)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to the user directory CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Printf("udir %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: get <id>, (l)ist, update <id>, delete <id>, whoami, exit")
			} else {
				fmt.Println("Available commands: signup, login, exit")
			}

		case "signup":
			a.signUp(ctx)
		case "login":
			a.login(ctx)
		case "get":
			a.get(ctx, args)
		case "l", "list":
			a.list(ctx)
		case "update":
			a.update(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "whoami":
			if a.user == nil {
				fmt.Println("Not logged in")
			} else {
				fmt.Println(a.user)
			}
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
