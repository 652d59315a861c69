package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/common"
)

func (a *App) signUp(ctx context.Context) {

	firstName, err := GetSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	lastName, err := GetSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.api.SignUp(reqCtx, client.SignUpParams{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		UserName:  userName,
		Password:  string(password),
	})
	if err != nil {
		log.Printf("Sign-up unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Signed up as %s (id=%d), now log in", user.UserName, user.ID)
}
