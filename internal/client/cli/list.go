package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) list(ctx context.Context) {

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.api.ListUsers(reqCtx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(users) == 0 {
		fmt.Println("No users")
		return
	}

	for _, user := range users {
		fmt.Println(user)
	}
}
