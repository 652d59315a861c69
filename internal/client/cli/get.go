package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
)

func (a *App) get(ctx context.Context, args []string) {

	if len(args) == 0 {
		fmt.Println("Usage: get <id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: get <id>")
		return
	}

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.api.GetUser(reqCtx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if user == nil {
		fmt.Printf("No user with id %d\n", id)
		return
	}

	fmt.Println(user)
}
