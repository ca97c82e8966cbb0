package main

import (
	"encoding/json"
	"fmt"
)

func (cli *commandLine) dashboard(email string) error {
	usr, err := cli.svc.GetUserByEmail(email)
	if err != nil {
		return err
	}
	dash, err := cli.svc.DashboardFor(usr.ID)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
