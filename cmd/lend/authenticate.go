package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/urfave/cli/v2"
)

var authenticate = cli.Command{
	Name:      "authenticate",
	Usage:     "store the lending service credential obtained from the authentication endpoint",
	ArgsUsage: "<token>",
	Action:    authenticateAction,
}

func authenticateAction(ctx *cli.Context) error {
	token := ctx.Args().First()
	if len(token) <= 0 {
		return &invalidUsageError{ctx, "authenticate"}
	}

	// Sanity parse only: the signature is the service's business, expiry is
	// worth catching before storing a dead credential.
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("token is not valid: %w", err)
	}
	if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			if time.Unix(int64(exp), 0).Before(time.Now()) {
				return errors.New("token is expired, authenticate again")
			}
		}
	}

	if err := setState(map[string]string{"auth_token": token}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Credential stored, you can borrow")
	return nil
}
