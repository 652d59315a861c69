package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/common"
)

// update prompts for the optional fields one by one. Fields left blank
// keep their current value on the server.
func (a *App) update(ctx context.Context, args []string) {

	if len(args) == 0 {
		fmt.Println("Usage: update <id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: update <id>")
		return
	}

	fmt.Println("Leave a field empty to keep its current value")

	userName, err := GetSimpleText(a.reader, "New user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	email, err := GetSimpleText(a.reader, "New email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	firstName, err := GetSimpleText(a.reader, "New first name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	lastName, err := GetSimpleText(a.reader, "New last name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	newPassword, err := GetPassword("New password (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(newPassword)

	var oldPassword []byte
	if len(newPassword) > 0 {
		oldPassword, err = GetPassword("Current password", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		defer common.WipeByteArray(oldPassword)
	}

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	err = a.api.UpdateUser(reqCtx, client.UpdateParams{
		ID:          id,
		UserName:    userName,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
	})
	if err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Updated user %d", id)
}
