package main

import (
	"github.com/acadly/spams/core/academic"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	usr, err := cli.svc.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if _, err := cli.svc.UpdateUserProfile(usr.ID, academic.UpdateUser{Password: &pwd}); err != nil {
		return err
	}
	return nil
}
