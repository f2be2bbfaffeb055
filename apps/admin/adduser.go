package main

import (
	"fmt"

	"github.com/trezcool/learnhub/core/user"
)

// addUser registers a new account from the command line.
func (cli *commandLine) addUser(name, email, pwd string, isAdmin bool) error {
	role := user.RoleStudent
	if isAdmin {
		role = user.RoleAdmin
	}
	usr, err := cli.usrSvc.Register(user.NewUser{
		Name:     name,
		Email:    email,
		Password: pwd,
		Role:     role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created %s user %s (%s)\n", usr.Role, usr.Name, usr.Email)
	return nil
}
