package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func (a *App) delete(ctx context.Context, args []string) {

	if len(args) == 0 {
		fmt.Println("Usage: delete <id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: delete <id>")
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %d? (y/N)", id), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if strings.ToLower(confirm) != "y" {
		fmt.Println("Cancelled")
		return
	}

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.DeleteUser(reqCtx, id); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Deleted user %d", id)
}
