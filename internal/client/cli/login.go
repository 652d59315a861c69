package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/common"
)

func (a *App) login(ctx context.Context) {

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

	user, err := a.api.SignIn(reqCtx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			return
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.user = user
	log.Printf("Login successful")
}
